package poliscope

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxChars caps how much of each document is embedded in the prompt,
// keeping the request inside the model's context window.
const DefaultMaxChars = 40000

const systemPromptBase = `Role
You are a policy-conditions comparer, specialized in ASR and comparison with other insurers. You work for professional users (intermediaries, underwriters, claims handlers).

Goal
Deliver a complete, literal, and structured comparison IN TABLE FORM between ASR and another insurer. No summaries or interpretations: only full content per provision.

Method
1) Read both documents in full (ASR and Other insurer).
2) Determine subjects/articles from the heading and numbering structure in the texts. Include all relevant subjects.
3) Produce one table with exactly 4 columns:
   - Subject
   - ASR
   - Other insurer
   - Differences
4) After the table, in this order:
  A) Summary and closing analysis
  B) Notable items only in ASR
  C) Notable items only in Other
  D) Final conclusion on the impact for insurance practice.

Content rules
- In 'ASR' and 'Other insurer': ALWAYS the full, literal text as it appears in the document. Do not summarize.
- When something appears in only one document: put 'Not present in ASR' or 'Not present in Other' in the other column and quote the present side fully and literally.
- Exclusions: list ALL points separately, item by item and literally.
- Value arrangements: ALWAYS write out in full (amounts, limits, depreciation, maxima, waiting periods, deductibles).
- Do not refer to other articles; quote the relevant text here in full.
- No legal advice or interpretation; only literal comparison and factual findings.`

const extendedExportInstruction = `

Export instruction
- After the full output: repeat exactly the same table as CSV in one code block with language tag csv (only the table, no extra text).`

const simpleStyleInstruction = `

Style instruction
- Keep the table condensed: short bullet-style cells covering only the provisions that differ. Do not emit a CSV code block.`

// SystemPrompt returns the role instruction for the given mode.
func SystemPrompt(mode Mode) string {
	if mode == ModeExtended {
		return systemPromptBase + extendedExportInstruction
	}
	return systemPromptBase + simpleStyleInstruction
}

// BuildPrompt assembles the user message embedding both documents' text.
// It is deterministic and performs no I/O; both text fields must already be
// non-empty (the caller short-circuits on empty extraction before any model
// call is made).
func BuildPrompt(req ComparisonRequest) string {
	var b strings.Builder
	b.WriteString("Compare the policy conditions below. Follow the system prompt strictly.\n\n")
	fmt.Fprintf(&b, "ASR (full text, possibly truncated):\n%s\n\n", req.ASRText)
	fmt.Fprintf(&b, "Other insurer (full text, possibly truncated):\n%s\n", req.OtherText)
	return b.String()
}

// Truncate limits s to at most max bytes without splitting a rune.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

package poliscope

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsBothDocuments(t *testing.T) {
	req := ComparisonRequest{
		ASRText:   "asr policy text",
		OtherText: "other insurer text",
		Mode:      ModeExtended,
	}
	p := BuildPrompt(req)
	if !strings.Contains(p, "asr policy text") || !strings.Contains(p, "other insurer text") {
		t.Errorf("prompt missing document text: %q", p)
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	req := ComparisonRequest{ASRText: "a", OtherText: "b", Mode: ModeSimple}
	if BuildPrompt(req) != BuildPrompt(req) {
		t.Error("prompt not deterministic")
	}
}

func TestSystemPromptModes(t *testing.T) {
	ext := SystemPrompt(ModeExtended)
	simple := SystemPrompt(ModeSimple)

	if !strings.Contains(ext, "language tag csv") {
		t.Error("extended mode missing csv export instruction")
	}
	if strings.Contains(simple, "language tag csv") {
		t.Error("simple mode must not request a csv block")
	}
	for _, section := range []string{
		"Subject",
		"Other insurer",
		"Differences",
		"Summary and closing analysis",
		"Notable items only in ASR",
		"Notable items only in Other",
		"Final conclusion",
	} {
		if !strings.Contains(ext, section) {
			t.Errorf("system prompt missing %q", section)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short string changed: %q", got)
	}
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("got %q, want %q", got, "hel")
	}
	// Never split a multi-byte rune.
	if got := Truncate("€€€", 4); got != "€" {
		t.Errorf("rune split: %q", got)
	}
	if got := Truncate("abc", 0); got != "abc" {
		t.Errorf("max<=0 should be a no-op: %q", got)
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode("extended"); !ok || m != ModeExtended {
		t.Errorf("extended not parsed: %v %v", m, ok)
	}
	if m, ok := ParseMode("simple"); !ok || m != ModeSimple {
		t.Errorf("simple not parsed: %v %v", m, ok)
	}
	if _, ok := ParseMode("bogus"); ok {
		t.Error("bogus mode accepted")
	}
}

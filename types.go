package poliscope

import "context"

// Mode selects the comparison style requested from the model.
type Mode string

const (
	// ModeSimple requests a condensed bullet-style narrative without a CSV block.
	ModeSimple Mode = "simple"
	// ModeExtended requests the full table plus its CSV serialization in a
	// fenced code block tagged csv.
	ModeExtended Mode = "extended"
)

// ParseMode maps a form value to a Mode. Unknown values report ok=false.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeSimple:
		return ModeSimple, true
	case ModeExtended:
		return ModeExtended, true
	}
	return "", false
}

// ComparisonRequest carries the inputs of one comparison run. It is built
// once per user submission and discarded after the model call completes.
type ComparisonRequest struct {
	ASRText     string
	OtherText   string
	Mode        Mode
	ShowAsTable bool
}

// --- LLM protocol types ---

type ChatMessage struct {
	Role    string `json:"role"` // "system" or "user"
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type ChatResponse struct {
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Provider is an LLM backend capable of a single synchronous completion.
type Provider interface {
	Name() string
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// --- ChatMessage constructors ---

func UserMessage(text string) ChatMessage {
	return ChatMessage{Role: "user", Content: text}
}

func SystemMessage(text string) ChatMessage {
	return ChatMessage{Role: "system", Content: text}
}

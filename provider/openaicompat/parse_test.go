package openaicompat

import "testing"

func TestParseResponse(t *testing.T) {
	resp := ChatResponse{
		Choices: []Choice{{Message: &ChoiceMessage{Role: "assistant", Content: "hello"}}},
		Usage:   &Usage{PromptTokens: 10, CompletionTokens: 5},
	}
	out, err := ParseResponse(resp)
	if err != nil {
		t.Fatal(err)
	}
	if out.Content != "hello" {
		t.Errorf("content = %q", out.Content)
	}
	if out.Usage.InputTokens != 10 || out.Usage.OutputTokens != 5 {
		t.Errorf("usage = %+v", out.Usage)
	}
}

func TestParseResponseNoChoices(t *testing.T) {
	out, err := ParseResponse(ChatResponse{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Content != "" {
		t.Errorf("content = %q, want empty", out.Content)
	}
}

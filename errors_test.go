package poliscope

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	if msg := (&ErrNoText{Name: "ASR"}).Error(); !strings.Contains(msg, "ASR") {
		t.Errorf("ErrNoText missing document name: %q", msg)
	}
	if msg := (&ErrMissingCredential{}).Error(); !strings.Contains(msg, "AI_API_KEY") {
		t.Errorf("ErrMissingCredential missing setup hint: %q", msg)
	}
	if msg := (&ErrLLM{Provider: "openai", Message: "dial failed"}).Error(); msg != "openai: dial failed" {
		t.Errorf("ErrLLM = %q", msg)
	}
	if msg := (&ErrHTTP{Status: 429, Body: "rate limited"}).Error(); msg != "http 429: rate limited" {
		t.Errorf("ErrHTTP = %q", msg)
	}
}

func TestErrorsAs(t *testing.T) {
	var wrapped error = &ErrHTTP{Status: 500, Body: "boom"}
	var httpErr *ErrHTTP
	if !errors.As(wrapped, &httpErr) || httpErr.Status != 500 {
		t.Error("errors.As failed for ErrHTTP")
	}
}

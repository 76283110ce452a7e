package poliscope

import "fmt"

// ErrNoText reports a document that yielded no usable text. The document is
// likely image-only or corrupt; the user must supply a different file.
type ErrNoText struct {
	Name string
}

func (e *ErrNoText) Error() string {
	return fmt.Sprintf("%s: no text could be extracted from the PDF", e.Name)
}

// ErrMissingCredential reports that no API key is configured. Checked before
// any network call is attempted.
type ErrMissingCredential struct{}

func (e *ErrMissingCredential) Error() string {
	return "no API key configured: set AI_API_KEY or add llm.api_key to poliscope.toml"
}

// ErrLLM reports a transport-level or client-side failure talking to the
// model endpoint.
type ErrLLM struct {
	Provider string
	Message  string
}

func (e *ErrLLM) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// ErrHTTP reports a non-success response from the remote service.
type ErrHTTP struct {
	Status int
	Body   string
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Body)
}

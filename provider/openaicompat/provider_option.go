package openaicompat

import (
	"log/slog"
	"net/http"
)

// ProviderOption configures a Provider at construction time.
type ProviderOption func(*Provider)

// WithName overrides the provider name reported in errors and telemetry
// (default "openai").
func WithName(name string) ProviderOption {
	return func(p *Provider) { p.name = name }
}

// WithHTTPClient replaces the HTTP client (e.g. to set a timeout).
func WithHTTPClient(c *http.Client) ProviderOption {
	return func(p *Provider) { p.client = c }
}

// WithProviderLogger sets the logger for request diagnostics.
func WithProviderLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) { p.logger = l }
}

// WithProviderTemperature applies a default temperature to every request.
func WithProviderTemperature(t float64) ProviderOption {
	return func(p *Provider) { p.opts = append(p.opts, WithTemperature(t)) }
}

// WithProviderMaxTokens applies a default completion cap to every request.
func WithProviderMaxTokens(n int) ProviderOption {
	return func(p *Provider) { p.opts = append(p.opts, WithMaxTokens(n)) }
}

// Package app runs the comparison pipeline: extract both PDFs, build the
// prompt, make one synchronous model call, and parse the response. One user
// action maps to one sequential run; nothing is shared across requests.
package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	poliscope "github.com/mwiersma/poliscope"
	"github.com/mwiersma/poliscope/ingest"
	"github.com/mwiersma/poliscope/internal/config"
)

// Deps holds injected dependencies for the App.
type Deps struct {
	Extractor ingest.Extractor
	LLM       poliscope.Provider
	Logger    *slog.Logger
}

// App wires the collaborators of one comparison run.
type App struct {
	extractor ingest.Extractor
	llm       poliscope.Provider
	parser    *poliscope.Extractor
	cfg       *config.Config
	logger    *slog.Logger
}

// New creates an App.
func New(cfg *config.Config, deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		extractor: deps.Extractor,
		llm:       deps.LLM,
		parser:    poliscope.NewExtractor(poliscope.WithLogger(logger)),
		cfg:       cfg,
		logger:    logger,
	}
}

// Input is one user submission.
type Input struct {
	ASR         []byte
	Other       []byte
	Mode        poliscope.Mode
	ShowAsTable bool
	// MaxChars limits how much of each document's text is embedded in the
	// prompt for this request. Zero or negative falls back to the config value.
	MaxChars int
}

// Outcome is the result of one comparison run.
type Outcome struct {
	// Display is the full model narrative, always present on success.
	Display string
	// Table is non-nil when a usable CSV block was recovered.
	Table       *poliscope.Table
	Mode        poliscope.Mode
	ShowAsTable bool
	Usage       poliscope.Usage
}

// Compare runs the pipeline for one submission. Failures are returned as
// the typed errors from the root package; none are retried.
func (a *App) Compare(ctx context.Context, in Input) (*Outcome, error) {
	log := a.logger.With("request_id", uuid.NewString())

	if a.cfg.LLM.APIKey == "" {
		return nil, &poliscope.ErrMissingCredential{}
	}

	asrText, err := a.extractText(in.ASR, "ASR document", log)
	if err != nil {
		return nil, err
	}
	otherText, err := a.extractText(in.Other, "other insurer document", log)
	if err != nil {
		return nil, err
	}

	maxChars := in.MaxChars
	if maxChars <= 0 {
		maxChars = a.cfg.LLM.MaxChars
	}
	req := poliscope.ComparisonRequest{
		ASRText:     poliscope.Truncate(asrText, maxChars),
		OtherText:   poliscope.Truncate(otherText, maxChars),
		Mode:        in.Mode,
		ShowAsTable: in.ShowAsTable,
	}

	temp := a.cfg.LLM.Temperature
	resp, err := a.llm.Chat(ctx, poliscope.ChatRequest{
		Messages: []poliscope.ChatMessage{
			poliscope.SystemMessage(poliscope.SystemPrompt(in.Mode)),
			poliscope.UserMessage(poliscope.BuildPrompt(req)),
		},
		Temperature: &temp,
	})
	if err != nil {
		log.Error("model call failed", "error", err)
		return nil, err
	}
	log.Info("model call completed",
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)

	display, table := a.parser.Extract(resp.Content)
	return &Outcome{
		Display:     display,
		Table:       table,
		Mode:        in.Mode,
		ShowAsTable: in.ShowAsTable,
		Usage:       resp.Usage,
	}, nil
}

// extractText pulls plain text from one uploaded PDF, mapping empty results
// to ErrNoText so the caller short-circuits before any model call.
func (a *App) extractText(content []byte, name string, log *slog.Logger) (string, error) {
	text, err := a.extractor.Extract(content)
	if err != nil {
		log.Warn("text extraction failed", "document", name, "error", err)
		return "", &poliscope.ErrNoText{Name: name}
	}
	if text == "" {
		log.Warn("document yielded no text", "document", name)
		return "", &poliscope.ErrNoText{Name: name}
	}
	return text, nil
}

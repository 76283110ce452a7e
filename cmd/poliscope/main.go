package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	poliscope "github.com/mwiersma/poliscope"
	"github.com/mwiersma/poliscope/ingest"
	"github.com/mwiersma/poliscope/ingest/mupdf"
	"github.com/mwiersma/poliscope/ingest/pdf"
	"github.com/mwiersma/poliscope/internal/app"
	"github.com/mwiersma/poliscope/internal/config"
	"github.com/mwiersma/poliscope/internal/web"
	"github.com/mwiersma/poliscope/observer"
	"github.com/mwiersma/poliscope/provider/openaicompat"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger); err != nil {
		logger.Error("poliscope exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load config
	cfg := config.Load(os.Getenv("POLISCOPE_CONFIG"))
	if cfg.LLM.APIKey == "" {
		// Surfaced per request too; warn once at startup for operators.
		logger.Warn("no API key configured", "hint", (&poliscope.ErrMissingCredential{}).Error())
	}

	// 2. Create the provider
	var llm poliscope.Provider = openaicompat.NewProvider(
		cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL,
		openaicompat.WithProviderTemperature(cfg.LLM.Temperature),
		openaicompat.WithProviderLogger(logger),
	)

	// 3. Optional observability
	if cfg.Observer.Enabled {
		inst, shutdown, err := observer.Init(ctx)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				logger.Warn("observer shutdown", "error", err)
			}
		}()
		llm = observer.WrapProvider(llm, inst)
	}

	// 4. Text extraction: MuPDF first, pure-Go fallback
	extractor := ingest.Fallback{
		mupdf.NewExtractor(),
		pdf.NewExtractor(),
	}

	// 5. Pipeline + frontend
	a := app.New(&cfg, app.Deps{Extractor: extractor, LLM: llm, Logger: logger})
	srv, err := web.NewServer(a, cfg.Server.MaxUploadBytes, logger)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(sctx); err != nil {
			logger.Warn("server shutdown", "error", err)
		}
	}()

	logger.Info("poliscope listening", "addr", cfg.Server.Addr, "model", cfg.LLM.Model)
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

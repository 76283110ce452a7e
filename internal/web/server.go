// Package web is the browser frontend: an upload form for the two policy
// PDFs, the rendered comparison result, and the downloadable artifacts.
package web

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	poliscope "github.com/mwiersma/poliscope"
	"github.com/mwiersma/poliscope/export"
	"github.com/mwiersma/poliscope/internal/app"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Server serves the comparison UI.
type Server struct {
	templates *template.Template
	app       *app.App
	logger    *slog.Logger
	maxUpload int64
}

// FormView renders the upload form, optionally with an error banner.
type FormView struct {
	Error string
}

// ResultView renders one finished comparison.
type ResultView struct {
	Narrative template.HTML
	Table     *poliscope.Table
	ShowTable bool
	CSVText   string
	// CSVMissing is set in Extended mode when no CSV block was recovered,
	// so the page can suggest manual copy-paste instead of a download.
	CSVMissing bool
}

// NewServer creates the frontend around a comparison pipeline.
func NewServer(a *app.App, maxUpload int64, logger *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if maxUpload <= 0 {
		maxUpload = 32 << 20
	}
	return &Server{
		templates: tmpl,
		app:       a,
		logger:    logger,
		maxUpload: maxUpload,
	}, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("POST /download", s.handleDownload)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, http.StatusOK, "")
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.renderForm(w, http.StatusRequestEntityTooLarge, "Upload too large or malformed.")
		return
	}

	asr, err := formFile(r, "asr")
	if err != nil {
		s.renderForm(w, http.StatusUnprocessableEntity, "Upload both PDFs: the ASR document is missing.")
		return
	}
	other, err := formFile(r, "other")
	if err != nil {
		s.renderForm(w, http.StatusUnprocessableEntity, "Upload both PDFs: the other insurer's document is missing.")
		return
	}

	mode, ok := poliscope.ParseMode(r.FormValue("mode"))
	if !ok {
		s.renderForm(w, http.StatusUnprocessableEntity, "Unknown comparison mode.")
		return
	}
	showTable := r.FormValue("show_table") != ""

	out, err := s.app.Compare(r.Context(), app.Input{
		ASR:         asr,
		Other:       other,
		Mode:        mode,
		ShowAsTable: showTable,
		MaxChars:    maxCharsValue(r.FormValue("max_chars")),
	})
	if err != nil {
		msg, status := userMessage(err)
		s.logger.Warn("comparison failed", "error", err, "status", status)
		s.renderForm(w, status, msg)
		return
	}

	view := ResultView{
		Narrative:  renderMarkdown(out.Display),
		Table:      out.Table,
		ShowTable:  out.ShowAsTable && out.Table != nil,
		CSVMissing: out.Table == nil && out.Mode == poliscope.ModeExtended,
	}
	if out.Table != nil {
		view.CSVText = string(out.Table.CSV())
	}
	if err := s.templates.ExecuteTemplate(w, "result", view); err != nil {
		s.logger.Error("render result", "error", err)
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusUnprocessableEntity)
		return
	}
	table, err := poliscope.ParseTable(r.FormValue("csv"))
	if err != nil {
		http.Error(w, "no valid table in request", http.StatusUnprocessableEntity)
		return
	}

	switch r.FormValue("format") {
	case "xlsx":
		data, err := export.XLSX(table)
		if err != nil {
			s.logger.Error("xlsx export", "error", err)
			http.Error(w, "could not build workbook", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.BaseFilename+`.xlsx"`)
		w.Write(data)
	default:
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.BaseFilename+`.csv"`)
		w.Write(export.CSV(table))
	}
}

func (s *Server) renderForm(w http.ResponseWriter, status int, errMsg string) {
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "index", FormView{Error: errMsg}); err != nil {
		s.logger.Error("render form", "error", err)
	}
}

// maxCharsValue parses the per-document character limit from the form.
// Absent or unusable values yield zero, which leaves the configured default
// in effect.
func maxCharsValue(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// formFile reads one uploaded file from the multipart form.
func formFile(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// userMessage maps the error taxonomy to a user-facing message and status.
// Every failure is surfaced at the point of occurrence; none trigger retries.
func userMessage(err error) (string, int) {
	var noText *poliscope.ErrNoText
	if errors.As(err, &noText) {
		return "Could not extract text from the " + noText.Name + ". Try a different file or a higher-quality scan.", http.StatusUnprocessableEntity
	}
	var cred *poliscope.ErrMissingCredential
	if errors.As(err, &cred) {
		return cred.Error(), http.StatusInternalServerError
	}
	var httpErr *poliscope.ErrHTTP
	if errors.As(err, &httpErr) {
		return "The AI service rejected the request (" + httpErr.Error() + "). Try again later.", http.StatusBadGateway
	}
	var llmErr *poliscope.ErrLLM
	if errors.As(err, &llmErr) {
		return "Could not reach the AI service. Check connectivity and try again.", http.StatusBadGateway
	}
	return "Comparison failed: " + err.Error(), http.StatusInternalServerError
}

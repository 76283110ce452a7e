// Package poliscope compares two insurance-policy PDF documents using an
// external AI model and recovers a downloadable table from its free-text answer.
//
// The root package holds the pure pieces: the domain types, the error
// taxonomy, the prompt builder, and the response parser that scans model
// output for a fenced CSV block and validates it into a [Table]. None of it
// performs I/O, so all of it is deterministic and unit-testable.
//
// External collaborators live in subpackages:
//
//   - ingest, ingest/pdf, ingest/mupdf — PDF text extraction
//   - provider/openaicompat — OpenAI-compatible chat completions client
//   - export — CSV and XLSX artifact serialization
//   - observer — optional OTEL instrumentation for model calls
//   - internal/app — the one-request comparison pipeline
//   - internal/web — the browser frontend
//
// See cmd/poliscope for the wired application.
package poliscope

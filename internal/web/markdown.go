package web

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md renders the model narrative. GFM tables are enabled because the answer
// format is one markdown table plus prose sections. Raw HTML in model output
// is omitted by goldmark's default renderer (replaced with a placeholder
// comment), so it never reaches the page.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// renderMarkdown converts model output to HTML for the result page. On a
// conversion failure the text is shown preformatted instead.
func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
	}
	return template.HTML(buf.String())
}

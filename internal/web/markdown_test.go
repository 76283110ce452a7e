package web

import (
	"strings"
	"testing"
)

func TestRenderMarkdownBasics(t *testing.T) {
	out := string(renderMarkdown("## Title\n\n| A | B |\n|---|---|\n| 1 | 2 |"))
	if !strings.Contains(out, "<h2") {
		t.Errorf("heading not rendered: %s", out)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("gfm table not rendered: %s", out)
	}
}

func TestRenderMarkdownOmitsRawHTML(t *testing.T) {
	out := string(renderMarkdown("before <script>alert(1)</script> after"))
	if strings.Contains(out, "<script>") {
		t.Errorf("raw html passed through: %s", out)
	}
	if !strings.Contains(out, "before") || !strings.Contains(out, "after") {
		t.Errorf("surrounding text lost: %s", out)
	}
}

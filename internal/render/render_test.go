package render

import (
	"strings"
	"testing"

	"github.com/dgallion1/mdpress/internal/document"
)

func TestToHTML(t *testing.T) {
	r := New()
	out, err := r.ToHTML("# Hello\n\nSome *text*.\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Hello</h1>") {
		t.Errorf("expected h1 in output, got %q", out)
	}
	if !strings.Contains(out, "<em>text</em>") {
		t.Errorf("expected emphasis in output, got %q", out)
	}
}

func TestToHTMLSubstitutesPagebreaks(t *testing.T) {
	r := New()
	md := "before\n\n" + document.Pagebreak + "\n\n# After\n"
	out, err := r.ToHTML(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, document.Pagebreak) {
		t.Errorf("sentinel should be substituted, got %q", out)
	}
	if !strings.Contains(out, PagebreakDiv) {
		t.Errorf("expected page-break div, got %q", out)
	}
}

func TestAssemble(t *testing.T) {
	r := New()
	out, err := r.Assemble("<p>the body</p>", "My Book")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<p>the body</p>") {
		t.Error("body HTML missing from assembled page")
	}
	if !strings.Contains(out, "<title>My Book</title>") {
		t.Errorf("expected page title injection, got %q", out)
	}
	if strings.Contains(out, document.BodyContent) {
		t.Error("body sentinel should be substituted")
	}
}

func TestAssembleWithoutTitle(t *testing.T) {
	r := New()
	out, err := r.Assemble("<p>x</p>", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<title>Document</title>") {
		t.Errorf("default template title should survive, got %q", out)
	}
}

func TestAssembleMissingSentinel(t *testing.T) {
	r := NewWithTemplate([]byte("<html><head><title>t</title></head><body></body></html>"))
	if _, err := r.Assemble("<p>x</p>", ""); err == nil {
		t.Fatal("expected error for template without body sentinel")
	}
}

func TestTOC(t *testing.T) {
	md := "# One\n\ntext\n\n## One A\n\n# Two\n\n### Deep\n\n#### Too deep\n"
	toc := TOC(md, 3)
	if !strings.HasPrefix(toc, "## Contents\n") {
		t.Errorf("expected contents heading, got %q", toc)
	}
	for _, want := range []string{"- One\n", "  - One A\n", "- Two\n", "    - Deep\n"} {
		if !strings.Contains(toc, want) {
			t.Errorf("expected entry %q in toc:\n%s", want, toc)
		}
	}
	if strings.Contains(toc, "Too deep") {
		t.Error("entries beyond max level should be excluded")
	}
}

func TestTOCEmpty(t *testing.T) {
	if toc := TOC("no headings here\n", 3); toc != "" {
		t.Errorf("expected empty toc, got %q", toc)
	}
}

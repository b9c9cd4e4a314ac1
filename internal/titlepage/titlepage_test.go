package titlepage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTitlePage(t *testing.T) {
	input := `---
titlepage: true
title: System Manual
subtitle: Operator Edition
author: J. Smith
date: "2026-08"
version: "1.4"
---
# System Manual

Operator Edition
`
	title, ok := Parse([]byte(input))
	if !ok {
		t.Fatal("expected a title page")
	}
	if title.Heading != "System Manual" {
		t.Errorf("expected heading %q, got %q", "System Manual", title.Heading)
	}
	if title.Subtitle != "Operator Edition" {
		t.Errorf("expected subtitle %q, got %q", "Operator Edition", title.Subtitle)
	}
	if title.Author != "J. Smith" {
		t.Errorf("expected author %q, got %q", "J. Smith", title.Author)
	}
	if title.Custom["version"] != "1.4" {
		t.Errorf("expected custom version field, got %v", title.Custom)
	}
	if !strings.HasPrefix(title.Raw, "# System Manual") {
		t.Errorf("raw should keep the markdown body, got %q", title.Raw)
	}
	if !strings.HasSuffix(title.Raw, "\n\n") {
		t.Errorf("raw should end with a blank line, got %q", title.Raw)
	}
}

func TestParseSynthesizesRaw(t *testing.T) {
	input := `---
titlepage: true
title: Field Notes
author: R. Jones
---
`
	title, ok := Parse([]byte(input))
	if !ok {
		t.Fatal("expected a title page")
	}
	if !strings.Contains(title.Raw, "# Field Notes") {
		t.Errorf("expected synthesized heading, got %q", title.Raw)
	}
	if !strings.Contains(title.Raw, "R. Jones") {
		t.Errorf("expected synthesized author line, got %q", title.Raw)
	}
}

func TestParseRejectsNonTitlePages(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain markdown", "# Just a heading\n\ntext\n"},
		{"frontmatter without flag", "---\ntitle: Not A Title Page\n---\ntext\n"},
		{"flag false", "---\ntitlepage: false\ntitle: Nope\n---\ntext\n"},
		{"malformed frontmatter", "---\n: bad yaml\n---\ntext\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if title, ok := Parse([]byte(tt.input)); ok {
				t.Errorf("expected rejection, got %+v", title)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "title.md")
	content := "---\ntitlepage: true\ntitle: On Disk\n---\n# On Disk\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	title, ok := Extractor{}.Extract(path)
	if !ok {
		t.Fatal("expected a title page")
	}
	if title.Heading != "On Disk" {
		t.Errorf("expected heading %q, got %q", "On Disk", title.Heading)
	}

	if _, ok := (Extractor{}).Extract(filepath.Join(root, "missing.md")); ok {
		t.Error("missing file must not be a title page")
	}
}

// Package titlepage recognizes and parses title-page fragments. A title page
// is a markdown file whose YAML frontmatter declares `titlepage: true`; at
// most one is retained per combine pass.
package titlepage

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

// Title is a parsed title page. Raw is the markdown text prepended to the
// assembled document.
type Title struct {
	Heading  string
	Subtitle string
	Author   string
	Date     string
	Custom   map[string]any
	Raw      string
}

type envelope struct {
	TitlePage bool           `yaml:"titlepage"`
	Title     string         `yaml:"title"`
	Subtitle  string         `yaml:"subtitle"`
	Author    string         `yaml:"author"`
	Date      string         `yaml:"date"`
	Custom    map[string]any `yaml:",inline"`
}

// Extractor recognizes title pages on disk.
type Extractor struct{}

// Extract reports whether the file at path is a title page. Unreadable files
// are not title pages; absence is a normal outcome, never an error.
func (Extractor) Extract(path string) (*Title, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return Parse(data)
}

// Parse recognizes a title page in raw fragment bytes. Files without
// frontmatter, with malformed frontmatter, or without the titlepage flag are
// reported as not a title page.
func Parse(data []byte) (*Title, bool) {
	var meta envelope
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil || !meta.TitlePage {
		return nil, false
	}

	t := &Title{
		Heading:  meta.Title,
		Subtitle: meta.Subtitle,
		Author:   meta.Author,
		Date:     meta.Date,
		Custom:   meta.Custom,
	}
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		raw = t.synthesize()
	}
	if raw != "" {
		raw += "\n\n"
	}
	t.Raw = raw
	return t, true
}

// synthesize builds a minimal title block from frontmatter fields for title
// pages with no markdown body of their own.
func (t *Title) synthesize() string {
	var b strings.Builder
	if t.Heading != "" {
		fmt.Fprintf(&b, "# %s\n", t.Heading)
	}
	if t.Subtitle != "" {
		fmt.Fprintf(&b, "\n%s\n", t.Subtitle)
	}
	if t.Author != "" || t.Date != "" {
		b.WriteString("\n")
		if t.Author != "" {
			fmt.Fprintf(&b, "%s\n", t.Author)
		}
		if t.Date != "" {
			fmt.Fprintf(&b, "%s\n", t.Date)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Package document assembles one markdown document from a fragment tree:
// depth-first combination of fragment files, per-directory header synthesis,
// title-page extraction, and page-break normalization.
package document

import (
	"github.com/dgallion1/mdpress/internal/doctree"
	"github.com/dgallion1/mdpress/internal/titlepage"
)

// Sentinels consumed by downstream rendering.
const (
	// Pagebreak marks where a renderer substitutes a page-break construct.
	Pagebreak = "======================pagebreak======================"
	// BodyContent marks where an enclosing template receives the rendered body.
	BodyContent = "======================body-section-content======================"
)

// Document is the assembled output: optional title page, combined markdown
// body, and optionally a rendered HTML form.
type Document struct {
	tree     *doctree.Node
	Title    *titlepage.Title
	Markdown string
	HTML     string
}

// New returns an empty document for the given fragment tree.
func New(tree *doctree.Node) *Document {
	return &Document{tree: tree}
}

// Build runs a full combine over the tree and returns a fresh document with
// the normalized body and any extracted title. The receiver is unchanged.
func (d *Document) Build(c *Combiner) *Document {
	res := c.Combine(d.tree)
	return &Document{
		tree:     d.tree,
		Title:    res.Title,
		Markdown: AddPageBreaks(res.Body),
	}
}

// WithHTML returns a copy with the rendered form attached.
func (d *Document) WithHTML(html string) *Document {
	out := *d
	out.HTML = html
	return &out
}

// WithMarkdown returns a copy with the raw body replaced.
func (d *Document) WithMarkdown(md string) *Document {
	out := *d
	out.Markdown = md
	return &out
}

// Joined returns the title's raw text (when present) followed by the body.
func (d *Document) Joined() string {
	if d.Title == nil {
		return d.Markdown
	}
	return d.Title.Raw + d.Markdown
}

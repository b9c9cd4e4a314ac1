// Package render converts the assembled markdown into a standalone HTML page,
// substituting the pagebreak and body-content sentinels.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"github.com/dgallion1/mdpress/internal/document"
)

//go:embed template.html
var defaultTemplate []byte

// PagebreakDiv replaces the pagebreak sentinel in rendered output.
const PagebreakDiv = `<div class="pagebreak"></div>`

// Renderer converts combined markdown to HTML and assembles it into a page
// template at the body-content sentinel. Stateless; safe to reuse.
type Renderer struct {
	md   goldmark.Markdown
	tmpl []byte
}

// New returns a renderer using the embedded default template.
func New() *Renderer {
	return NewWithTemplate(nil)
}

// NewWithTemplate returns a renderer with a caller-supplied page template,
// which must contain the body-content sentinel. An empty template selects
// the embedded default.
func NewWithTemplate(tmpl []byte) *Renderer {
	if len(tmpl) == 0 {
		tmpl = defaultTemplate
	}
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.TaskList),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		),
		tmpl: tmpl,
	}
}

// ToHTML renders markdown to HTML and substitutes pagebreak sentinels with
// the page-break div.
func (r *Renderer) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	out := buf.String()
	// Goldmark emits the sentinel as its own paragraph.
	out = strings.ReplaceAll(out, "<p>"+document.Pagebreak+"</p>", PagebreakDiv)
	out = strings.ReplaceAll(out, document.Pagebreak, PagebreakDiv)
	return out, nil
}

// Assemble injects rendered body HTML into the page template and sets the
// page title when one was extracted.
func (r *Renderer) Assemble(bodyHTML, title string) (string, error) {
	tmpl := r.tmpl
	if title != "" {
		withTitle, err := setPageTitle(tmpl, title)
		if err != nil {
			return "", err
		}
		tmpl = withTitle
	}
	if !bytes.Contains(tmpl, []byte(document.BodyContent)) {
		return "", fmt.Errorf("template is missing the %q sentinel", document.BodyContent)
	}
	return strings.Replace(string(tmpl), document.BodyContent, bodyHTML, 1), nil
}

// setPageTitle rewrites the text of the template's <title> element. Templates
// without one pass through unchanged.
func setPageTitle(tmpl []byte, title string) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(tmpl))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	node := findElement(doc, "title")
	if node == nil {
		return tmpl, nil
	}
	for c := node.FirstChild; c != nil; {
		next := c.NextSibling
		node.RemoveChild(c)
		c = next
	}
	node.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return buf.Bytes(), nil
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

package render

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TOC builds a markdown table of contents from the document's headings, down
// to the given maximum level. Returns the empty string when the document has
// no headings.
func TOC(markdown string, maxLevel int) string {
	if maxLevel <= 0 {
		maxLevel = 3
	}
	src := []byte(markdown)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	// Headings are block-level; only direct children need walking.
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > maxLevel {
			continue
		}
		title := string(h.Text(src))
		if title == "" {
			continue
		}
		indent := strings.Repeat("  ", h.Level-1)
		fmt.Fprintf(&b, "%s- %s\n", indent, title)
	}
	if b.Len() == 0 {
		return ""
	}
	return "## Contents\n\n" + b.String() + "\n"
}

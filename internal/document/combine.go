package document

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/dgallion1/mdpress/internal/doctree"
	"github.com/dgallion1/mdpress/internal/titlepage"
)

// FileReader loads a fragment's full text. Injected so combines can run
// against synthetic trees in tests.
type FileReader func(path string) (string, error)

// TitleExtractor recognizes a title page at a path. Absence is a normal
// outcome, not a failure.
type TitleExtractor interface {
	Extract(path string) (*titlepage.Title, bool)
}

// Result is the outcome of one combine pass.
type Result struct {
	Title *titlepage.Title
	Body  string
}

// Combiner walks a fragment tree depth-first, producing one concatenated
// markdown body and at most one extracted title page. The tree is read-only
// during the walk; no failure aborts it.
type Combiner struct {
	read   FileReader
	titles TitleExtractor
	log    *slog.Logger
}

// NewCombiner returns a combiner reading fragments from disk and recognizing
// title pages by frontmatter.
func NewCombiner(log *slog.Logger) *Combiner {
	return &Combiner{
		read: func(path string) (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
		titles: titlepage.Extractor{},
		log:    log,
	}
}

// accumulator threads the body and title through the recursion. There is a
// single writer at any time.
type accumulator struct {
	body  strings.Builder
	title *titlepage.Title
}

// Combine runs a depth-first pass over the tree.
func (c *Combiner) Combine(node *doctree.Node) Result {
	acc := &accumulator{}
	c.combine(node, acc)
	return Result{Title: acc.title, Body: acc.body.String()}
}

func (c *Combiner) combine(node *doctree.Node, acc *accumulator) {
	c.log.Debug("combine", "path", node.Path)
	if !node.IsDir {
		if acc.title == nil {
			if t, ok := c.titles.Extract(node.Path); ok {
				// The title page contributes nothing to the body.
				c.log.Debug("title page found", "path", node.Path)
				acc.title = t
				return
			}
		}
		content, err := c.read(node.Path)
		if err != nil {
			c.log.Debug("skipping unreadable fragment", "path", node.Path, "error", err)
			return
		}
		acc.body.WriteString(content)
		return
	}

	acc.body.WriteString(c.readHeader(node))
	for _, child := range node.Children {
		if !child.IsDir && child.Header() == node.Header() {
			// Already consumed as this directory's header source.
			continue
		}
		c.combine(child, acc)
	}
	for !strings.HasSuffix(acc.body.String(), "\n\n") {
		acc.body.WriteString("\n")
	}
	if !EndsWithPagebreak(acc.body.String()) {
		acc.body.WriteString(Pagebreak)
		acc.body.WriteString("\n\n")
	}
}

var headingLine = regexp.MustCompile(`^[ \t]*(#*)[ \t](.*)$`)

// readHeader synthesizes the section heading for a directory from its
// designated header source: the first file child whose Header matches the
// directory's. A missing source degrades to an empty contribution.
func (c *Combiner) readHeader(dir *doctree.Node) string {
	for _, child := range dir.Children {
		if !child.IsDir && child.Header() == dir.Header() {
			return c.rebuildHeader(child)
		}
	}
	c.log.Warn("no header source for directory", "path", dir.Path, "header", dir.Header())
	return ""
}

// rebuildHeader rewrites the source file's heading line to carry the section
// label: "# Doc header" => "# Part 01. Doc header". A first line that is not
// a heading leaves the file untouched.
func (c *Combiner) rebuildHeader(src *doctree.Node) string {
	content, err := c.read(src.Path)
	if err != nil {
		c.log.Debug("skipping unreadable header source", "path", src.Path, "error", err)
		return ""
	}
	lines := strings.Split(content, "\n")
	m := headingLine.FindStringSubmatch(lines[0])
	if m == nil {
		return content
	}
	first := fmt.Sprintf("%s %s. %s\n\n", m[1], src.Header(), m[2])
	rest := lines[1:]
	if len(rest) > 1 {
		return first + strings.Join(rest, "\n")
	}
	// Heading-only file: blank placeholder keeps section spacing intact.
	return first + "\n\n"
}

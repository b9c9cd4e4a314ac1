package doctree

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Node is a file or directory in the source fragment tree. Children are
// ordered and the tree is read-only once built.
type Node struct {
	Path     string
	IsDir    bool
	Children []*Node
}

// SupportedExtensions lists fragment extensions included in a scan.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

var numberedName = regexp.MustCompile(`^([A-Za-z]+)(\d+)`)

// Header derives the section label from the final path segment:
// "part01_xyz" => "Part 01". A directory and its designated header-source
// file yield the same label.
func (n *Node) Header() string {
	name := filepath.Base(n.Path)
	if !n.IsDir {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if m := numberedName.FindStringSubmatch(name); m != nil {
		return titleWord(m[1]) + " " + m[2]
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// Walk visits the tree depth-first in child order.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Scan builds the fragment tree rooted at path. Children follow os.ReadDir
// order (lexicographic); hidden entries and non-markdown files are skipped.
// A missing root is the only fatal condition.
func Scan(root string) (*Node, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	node := &Node{Path: root, IsDir: info.IsDir()}
	if !node.IsDir {
		return node, nil
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		childPath := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			child, err := Scan(childPath)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
			continue
		}
		if !IsSupportedExtension(entry.Name()) {
			continue
		}
		node.Children = append(node.Children, &Node{Path: childPath})
	}
	return node, nil
}

// IsSupportedExtension checks if a file extension is included in scans.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

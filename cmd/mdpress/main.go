package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/dgallion1/mdpress/internal/api"
	"github.com/dgallion1/mdpress/internal/config"
	"github.com/dgallion1/mdpress/internal/doctree"
	"github.com/dgallion1/mdpress/internal/document"
	"github.com/dgallion1/mdpress/internal/render"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg := config.Load()
	if len(os.Args) > 1 {
		cfg.SourceDir = os.Args[1]
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var tmpl []byte
	if cfg.TemplatePath != "" {
		data, err := os.ReadFile(cfg.TemplatePath)
		if err != nil {
			log.Error("cannot read template", "path", cfg.TemplatePath, "error", err)
			os.Exit(1)
		}
		tmpl = data
	}

	b := &docBuilder{cfg: cfg, rend: render.NewWithTemplate(tmpl), log: log}

	if cfg.Serve {
		serve(b, log, cfg)
		return
	}

	if err := runBuild(b, log, cfg); err != nil {
		log.Error("build failed", "error", err)
		os.Exit(1)
	}
}

// docBuilder assembles the document end to end: scan, combine, normalize,
// render. Builds are serialized; combining is not safe against concurrent
// mutation of the source tree.
type docBuilder struct {
	mu   sync.Mutex
	cfg  config.Config
	rend *render.Renderer
	log  *slog.Logger
}

// Build satisfies api.Builder, rescanning the source tree on every call.
func (b *docBuilder) Build() (*document.Document, error) {
	tree, err := doctree.Scan(b.cfg.SourceDir)
	if err != nil {
		return nil, err
	}
	return b.buildTree(tree)
}

func (b *docBuilder) buildTree(tree *doctree.Node) (*document.Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc := document.New(tree).Build(document.NewCombiner(b.log))
	if b.cfg.TOC {
		if toc := render.TOC(doc.Markdown, b.cfg.TOCDepth); toc != "" {
			doc = doc.WithMarkdown(toc + doc.Markdown)
		}
	}

	body, err := b.rend.ToHTML(doc.Joined())
	if err != nil {
		return nil, err
	}
	title := ""
	if doc.Title != nil {
		title = doc.Title.Heading
	}
	page, err := b.rend.Assemble(body, title)
	if err != nil {
		return nil, err
	}
	return doc.WithHTML(page), nil
}

func runBuild(b *docBuilder, log *slog.Logger, cfg config.Config) error {
	tree, err := doctree.Scan(cfg.SourceDir)
	if err != nil {
		return err
	}
	printTree(tree)

	doc, err := b.buildTree(tree)
	if err != nil {
		return err
	}

	if cfg.MarkdownOut != "" {
		if err := os.WriteFile(cfg.MarkdownOut, []byte(doc.Joined()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.MarkdownOut, err)
		}
		log.Info("wrote markdown", "path", cfg.MarkdownOut)
	}
	if cfg.HTMLOut != "" {
		if err := os.WriteFile(cfg.HTMLOut, []byte(doc.HTML), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.HTMLOut, err)
		}
		log.Info("wrote html", "path", cfg.HTMLOut)
	}
	return nil
}

func serve(b *docBuilder, log *slog.Logger, cfg config.Config) {
	srv := api.NewServer(b, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting mdpress preview", "port", cfg.Port, "source", cfg.SourceDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

var (
	dirColor  = color.New(color.FgCyan, color.Bold)
	fileColor = color.New(color.FgHiBlack)
)

// printTree echoes the fragments feeding the build.
func printTree(root *doctree.Node) {
	root.Walk(func(n *doctree.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		if n.IsDir {
			dirColor.Printf("%s%s/\n", indent, filepath.Base(n.Path))
		} else {
			fileColor.Printf("%s%s\n", indent, filepath.Base(n.Path))
		}
	})
}

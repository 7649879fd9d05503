// Package site generates a static HTML site from a directory of markdown
// content, a page template, and a directory of static assets.
package site

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/stanza/markdown"
)

// Generator builds a site. The output directory is cleared on every run:
// static assets are copied into it first, then one HTML page is written per
// markdown file under the content directory, mirroring its layout.
type Generator struct {
	ContentDir   string
	StaticDir    string
	TemplatePath string
	OutDir       string

	// Logf receives progress and warning messages. Nil disables logging.
	Logf func(format string, args ...any)
}

// Run performs a full site build. A missing content or static directory
// downgrades to a logged warning, but a missing template is an error: with
// content present it means every page would fail. The first failing page
// aborts the run; ctx is checked between pages.
func (g *Generator) Run(ctx context.Context) error {
	if err := g.copyStatic(); err != nil {
		return err
	}

	if _, err := os.Stat(g.ContentDir); os.IsNotExist(err) {
		g.logf("warning: content directory %s not found", g.ContentDir)
		return nil
	}

	tmpl, err := os.ReadFile(g.TemplatePath)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	pages, err := g.findPages()
	if err != nil {
		return err
	}
	for _, path := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.generatePage(string(tmpl), path); err != nil {
			return fmt.Errorf("generating %s: %w", path, err)
		}
	}
	return nil
}

// copyStatic clears the output directory and copies the static tree into
// it. A missing static directory downgrades to an empty output directory
// with a warning.
func (g *Generator) copyStatic() error {
	if err := os.RemoveAll(g.OutDir); err != nil {
		return fmt.Errorf("clearing %s: %w", g.OutDir, err)
	}
	if _, err := os.Stat(g.StaticDir); os.IsNotExist(err) {
		g.logf("warning: static directory %s not found, creating empty %s", g.StaticDir, g.OutDir)
		return os.MkdirAll(g.OutDir, 0o755)
	}
	if err := os.CopyFS(g.OutDir, os.DirFS(g.StaticDir)); err != nil {
		return fmt.Errorf("copying static assets: %w", err)
	}
	return nil
}

// findPages returns the slash-separated paths of all markdown files under
// the content directory, relative to it.
func (g *Generator) findPages() ([]string, error) {
	var pages []string
	err := doublestar.GlobWalk(os.DirFS(g.ContentDir), "**/*.md", func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		pages = append(pages, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", g.ContentDir, err)
	}
	return pages, nil
}

func (g *Generator) generatePage(tmpl, relPath string) error {
	src := filepath.Join(g.ContentDir, filepath.FromSlash(relPath))
	md, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	html, err := markdown.Page(tmpl, string(md))
	if err != nil {
		return err
	}

	rel := strings.TrimSuffix(filepath.FromSlash(relPath), ".md") + ".html"
	dest := filepath.Join(g.OutDir, rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	g.logf("generating %s -> %s", src, dest)
	return os.WriteFile(dest, []byte(html), 0o644)
}

func (g *Generator) logf(format string, args ...any) {
	if g.Logf != nil {
		g.Logf(format, args...)
	}
}

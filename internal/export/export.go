// Package export renders the GigAgent page and its static assets into a
// directory that any static file host can serve.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/linkcheck"
	"github.com/nfrund/gigagent/internal/rendering"
	"github.com/nfrund/gigagent/internal/storage"
	"github.com/nfrund/gigagent/web/src/templates/pages"
)

// PageFile is where the landing page is written, relative to the export root.
var PageFile = strings.TrimPrefix(content.PagePath, "/") + "/index.html"

// StaticDir is the export subdirectory holding static assets.
const StaticDir = "static"

// Options configures an Exporter.
type Options struct {
	Document pages.DocumentOptions
	// Assets are copied under StaticDir. Nil skips asset copying.
	Assets fs.FS
}

// File describes one written file.
type File struct {
	Path  string
	Bytes int64
}

// Result lists the files written by one export, page first, and the stale
// static files it removed.
type Result struct {
	Files   []File
	Removed []string
}

// TotalBytes is the sum of all written file sizes.
func (r *Result) TotalBytes() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.Bytes
	}
	return n
}

// Exporter writes the rendered site to a store.
type Exporter struct {
	store    storage.Store
	renderer rendering.Renderer
	opts     Options
}

// New creates a new Exporter.
func New(store storage.Store, renderer rendering.Renderer, opts Options) *Exporter {
	return &Exporter{store: store, renderer: renderer, opts: opts}
}

// Export validates the catalog, renders the page, writes it, checks the
// written page for dangling anchors, and copies the static assets. Files under
// StaticDir that are no longer in Assets are removed.
func (e *Exporter) Export(ctx context.Context, page content.Page) (*Result, error) {
	if err := content.Validate(page); err != nil {
		return nil, err
	}

	body, err := e.renderer.RenderComponent(ctx, pages.LandingDocument(page, e.opts.Document))
	if err != nil {
		return nil, fmt.Errorf("failed to render landing page: %w", err)
	}

	res := &Result{}
	n, err := e.store.Save(ctx, PageFile, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", PageFile, err)
	}
	res.Files = append(res.Files, File{Path: PageFile, Bytes: n})

	if err := e.verify(ctx, PageFile); err != nil {
		return nil, err
	}

	if e.opts.Assets != nil {
		if err := e.copyAssets(ctx, res); err != nil {
			return nil, err
		}
	}

	slog.Info("Exported site", "files", len(res.Files), "bytes", res.TotalBytes(), "removed", len(res.Removed))
	return res, nil
}

func (e *Exporter) verify(ctx context.Context, name string) error {
	f, err := e.store.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to reopen %s: %w", name, err)
	}
	defer f.Close()

	if err := linkcheck.Check(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (e *Exporter) copyAssets(ctx context.Context, res *Result) error {
	if err := e.writeAssets(ctx, res); err != nil {
		return err
	}

	written := make(map[string]struct{}, len(res.Files))
	for _, f := range res.Files {
		written[f.Path] = struct{}{}
	}
	existing, err := e.store.List(ctx, StaticDir)
	if err != nil {
		return err
	}
	for _, p := range existing {
		if _, ok := written[p]; ok {
			continue
		}
		if err := e.store.Remove(ctx, p); err != nil {
			return fmt.Errorf("failed to remove stale asset %s: %w", p, err)
		}
		slog.Debug("Removed stale asset", "path", p)
		res.Removed = append(res.Removed, p)
	}
	return nil
}

func (e *Exporter) writeAssets(ctx context.Context, res *Result) error {
	return fs.WalkDir(e.opts.Assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := e.opts.Assets.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open asset %s: %w", p, err)
		}
		defer f.Close()

		dst := path.Join(StaticDir, p)
		n, err := e.store.Save(ctx, dst, f)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
		res.Files = append(res.Files, File{Path: dst, Bytes: n})
		return nil
	})
}

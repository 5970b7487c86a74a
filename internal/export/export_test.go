package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/domain"
	"github.com/nfrund/gigagent/internal/rendering"
	"github.com/nfrund/gigagent/internal/storage"
	"github.com/nfrund/gigagent/web/src/templates/pages"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExporter(assets fstest.MapFS) (*Exporter, afero.Fs) {
	memFs := afero.NewMemMapFs()
	opts := Options{Document: pages.DocumentOptions{BaseURL: "https://garden.example"}}
	if assets != nil {
		opts.Assets = assets
	}
	return New(storage.NewAferoStore(memFs), rendering.NewUniversalRenderer(), opts), memFs
}

func TestExport(t *testing.T) {
	assets := fstest.MapFS{
		"robots.txt":       {Data: []byte("User-agent: *")},
		"css/gigagent.css": {Data: []byte("html{}")},
	}
	exp, memFs := newTestExporter(assets)

	res, err := exp.Export(context.Background(), content.Default())
	require.NoError(t, err)

	require.Len(t, res.Files, 3)
	assert.Equal(t, "gigagent/index.html", res.Files[0].Path)
	assert.ElementsMatch(t, []string{"static/robots.txt", "static/css/gigagent.css"}, []string{res.Files[1].Path, res.Files[2].Path})

	page, err := afero.ReadFile(memFs, "gigagent/index.html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(page), "<!doctype html>"))
	assert.EqualValues(t, len(page), res.Files[0].Bytes)
	assert.Equal(t, int64(len(page))+int64(len("User-agent: *"))+int64(len("html{}")), res.TotalBytes())

	css, err := afero.ReadFile(memFs, "static/css/gigagent.css")
	require.NoError(t, err)
	assert.Equal(t, "html{}", string(css))
}

func TestExport_RemovesStaleAssets(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := storage.NewAferoStore(memFs)
	run := func(assets fstest.MapFS) *Result {
		exp := New(store, rendering.NewUniversalRenderer(), Options{Assets: assets})
		res, err := exp.Export(context.Background(), content.Default())
		require.NoError(t, err)
		return res
	}

	run(fstest.MapFS{
		"robots.txt":   {Data: []byte("User-agent: *")},
		"old/logo.svg": {Data: []byte("<svg></svg>")},
	})
	res := run(fstest.MapFS{
		"robots.txt": {Data: []byte("User-agent: *")},
	})

	assert.Equal(t, []string{"static/old/logo.svg"}, res.Removed)
	exists, err := afero.Exists(memFs, "static/old/logo.svg")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = afero.Exists(memFs, "static/robots.txt")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = afero.Exists(memFs, PageFile)
	require.NoError(t, err)
	assert.True(t, exists, "the page is never pruned")
}

func TestExport_MatchesServedDocument(t *testing.T) {
	exp, memFs := newTestExporter(nil)

	_, err := exp.Export(context.Background(), content.Default())
	require.NoError(t, err)

	want, err := rendering.NewUniversalRenderer().RenderComponent(context.Background(),
		pages.LandingDocument(content.Default(), pages.DocumentOptions{BaseURL: "https://garden.example"}))
	require.NoError(t, err)

	got, err := afero.ReadFile(memFs, PageFile)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestExport_RejectsInvalidContent(t *testing.T) {
	exp, memFs := newTestExporter(nil)
	p := content.Default()
	p.Tiers[0].Name = ""

	_, err := exp.Export(context.Background(), p)

	assert.ErrorIs(t, err, domain.ErrInvalidContent)
	exists, _ := afero.Exists(memFs, PageFile)
	assert.False(t, exists, "nothing should be written for invalid content")
}

func TestExport_RejectsDanglingAnchor(t *testing.T) {
	exp, _ := newTestExporter(nil)
	p := content.Default()
	p.Nav = append(p.Nav, content.NavLink{Label: "Blog", Href: "#blog"})

	_, err := exp.Export(context.Background(), p)

	require.ErrorIs(t, err, domain.ErrDanglingAnchor)
	assert.Contains(t, err.Error(), "#blog")
}

func TestWatch_ReexportsOnChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "robots.txt"), []byte("v1"), 0o644))

	memFs := afero.NewMemMapFs()
	exp := New(storage.NewAferoStore(memFs), rendering.NewUniversalRenderer(), Options{Assets: os.DirFS(dir)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var results []*Result
	done := make(chan error, 1)
	go func() {
		done <- exp.Watch(ctx, dir, content.Default(), 20*time.Millisecond, func(res *Result, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				results = append(results, res)
			}
		})
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "robots.txt"), []byte("v2"), 0o644))

	assert.Eventually(t, func() bool {
		data, err := afero.ReadFile(memFs, "static/robots.txt")
		return err == nil && string(data) == "v2"
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, results)
}

func TestWatch_RemovesDeletedAsset(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "robots.txt"), []byte("User-agent: *"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.txt"), []byte("old"), 0o644))

	memFs := afero.NewMemMapFs()
	exp := New(storage.NewAferoStore(memFs), rendering.NewUniversalRenderer(), Options{Assets: os.DirFS(dir)})
	_, err := exp.Export(context.Background(), content.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- exp.Watch(ctx, dir, content.Default(), 20*time.Millisecond, nil)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.Remove(filepath.Join(dir, "old.txt")))

	assert.Eventually(t, func() bool {
		exists, err := afero.Exists(memFs, "static/old.txt")
		return err == nil && !exists
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancellation")
	}
}

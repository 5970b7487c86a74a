package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/gigagent/internal/config"
	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/export"
	"github.com/nfrund/gigagent/internal/rendering"
	"github.com/nfrund/gigagent/internal/storage"
	"github.com/nfrund/gigagent/web"
	"github.com/nfrund/gigagent/web/src/templates/pages"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type exportOptions struct {
	out       string
	staticDir string
	watch     bool
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the page and static assets into a directory",
		Long: `Writes the landing page to <out>/gigagent/index.html and copies the static
assets to <out>/static/. Assets come from the binary unless --static-dir is
given. With --watch, the site is exported again whenever a file in the
static directory changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch && opts.staticDir == "" {
				return errors.New("--watch requires --static-dir")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runExport(ctx, cmd.OutOrStdout(), config.FromEnv(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&opts.staticDir, "static-dir", "", "read static assets from this directory instead of the embedded copy")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-export when static assets change (requires --static-dir)")
	return cmd
}

func runExport(ctx context.Context, out io.Writer, cfg config.Provider, opts *exportOptions) error {
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var assets fs.FS = web.Static()
	if opts.staticDir != "" {
		assets = os.DirFS(opts.staticDir)
	}

	exp := export.New(storage.NewDirStore(opts.out), rendering.NewUniversalRenderer(), export.Options{
		Document: pages.DocumentOptions{
			BaseURL:       cfg.GetAppBaseURL(),
			StylesheetURL: cfg.GetStylesheetURL(),
		},
		Assets: assets,
	})

	page := content.Default()
	res, err := exp.Export(ctx, page)
	if err != nil {
		return err
	}
	printResult(out, opts.out, res)

	if !opts.watch {
		return nil
	}
	fmt.Fprintf(out, "Watching %s for changes. Press Ctrl+C to stop.\n", opts.staticDir)
	return exp.Watch(ctx, opts.staticDir, page, export.DefaultDebounce, func(res *export.Result, err error) {
		if err != nil {
			fmt.Fprintf(out, "export failed: %v\n", err)
			return
		}
		printResult(out, opts.out, res)
	})
}

func printResult(out io.Writer, dir string, res *export.Result) {
	p := message.NewPrinter(language.English)
	for _, f := range res.Files {
		p.Fprintf(out, "  %s/%s (%d bytes)\n", dir, f.Path, f.Bytes)
	}
	for _, f := range res.Removed {
		p.Fprintf(out, "  %s/%s (removed)\n", dir, f)
	}
	p.Fprintf(out, "Exported %d files, %d bytes\n", len(res.Files), res.TotalBytes())
}

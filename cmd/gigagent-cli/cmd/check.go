package cmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/linkcheck"
	"github.com/nfrund/gigagent/internal/rendering"
	"github.com/nfrund/gigagent/web/src/templates/pages"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the content catalog and in-page anchors",
		Long: `Validates that every list of the content catalog is non-empty and every
record is fully populated, then renders the page and verifies that every
in-page anchor points at an element id of the same document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd, content.Default())
		},
	}
}

func runCheck(ctx context.Context, cmd *cobra.Command, page content.Page) error {
	if err := content.Validate(page); err != nil {
		return err
	}

	body, err := rendering.NewUniversalRenderer().RenderComponent(ctx, pages.LandingDocument(page, pages.DocumentOptions{}))
	if err != nil {
		return fmt.Errorf("failed to render landing page: %w", err)
	}

	rep, err := linkcheck.Scan(bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := rep.Err(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "content: %d features, %d steps, %d tiers, %d FAQs\n",
		len(page.Features), len(page.Steps), len(page.Tiers), len(page.FAQs))
	fmt.Fprintf(out, "anchors: %d in-page anchors, all resolved\n", len(rep.Anchors))
	fmt.Fprintln(out, "OK")
	return nil
}

package pages

import (
	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// DocumentOptions carries the deployment-specific parts of the document head.
type DocumentOptions struct {
	BaseURL       string
	StylesheetURL string
}

// LandingDocument renders the complete GigAgent HTML document. The server and
// the exporter both build the page through here, so they emit the same bytes.
func LandingDocument(p content.Page, opts DocumentOptions) g.Node {
	return layouts.Document(
		layouts.HeadData{
			Title:         p.Meta.Title,
			Description:   p.Meta.Description,
			CanonicalURL:  layouts.CanonicalURL(opts.BaseURL, content.PagePath),
			StylesheetURL: opts.StylesheetURL,
		},
		Landing(p),
	)
}

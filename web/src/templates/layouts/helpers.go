//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.943 generate

package layouts

import "strings"

// HeadData is what the document head needs.
type HeadData struct {
	Title         string
	Description   string
	CanonicalURL  string
	StylesheetURL string
}

// CalculateTitle handles the fallback for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title
	}
	return "GigAgent"
}

// CanonicalURL joins the configured base URL and a page path. It returns an
// empty string when no base URL is configured, since a relative og:url is
// useless to link-preview consumers.
func CanonicalURL(baseURL, path string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// isStylesheet reports whether url points at a CSS file rather than a script
// (such as the Tailwind Play CDN).
func isStylesheet(url string) bool {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return strings.HasSuffix(url, ".css")
}

package layouts

import (
	"github.com/nfrund/gigagent/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Document wraps a page body in a complete HTML5 document. The head is a
// templ component, adapted so it can sit inside the gomponents tree.
func Document(head HeadData, body g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			view.AdaptTemplToGomponent(Head(head)),
			body,
		),
	)
}

// Package icons renders the small set of inline SVG glyphs used by the
// GigAgent page. Shapes follow the lucide icon set.
package icons

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Name identifies one of the pre-selected glyphs.
type Name string

const (
	ArrowRight  Name = "arrow-right"
	Sparkles    Name = "sparkles"
	Zap         Name = "zap"
	ShieldCheck Name = "shield-check"
	Mail        Name = "mail"
	CheckCircle Name = "check-circle"
)

var shapes = map[Name][]g.Node{
	ArrowRight: {
		path("M5 12h14"),
		path("m12 5 7 7-7 7"),
	},
	Sparkles: {
		path("m12 3-1.912 5.813a2 2 0 0 1-1.275 1.275L3 12l5.813 1.912a2 2 0 0 1 1.275 1.275L12 21l1.912-5.813a2 2 0 0 1 1.275-1.275L21 12l-5.813-1.912a2 2 0 0 1-1.275-1.275L12 3Z"),
		path("M5 3v4"),
		path("M19 17v4"),
		path("M3 5h4"),
		path("M17 19h4"),
	},
	Zap: {
		g.El("polygon", g.Attr("points", "13 2 3 14 12 14 11 22 21 10 12 10 13 2")),
	},
	ShieldCheck: {
		path("M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10"),
		path("m9 12 2 2 4-4"),
	},
	Mail: {
		g.El("rect", g.Attr("width", "20"), g.Attr("height", "16"), g.Attr("x", "2"), g.Attr("y", "4"), g.Attr("rx", "2")),
		path("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	},
	CheckCircle: {
		g.El("circle", g.Attr("cx", "12"), g.Attr("cy", "12"), g.Attr("r", "10")),
		path("m9 12 2 2 4-4"),
	},
}

// Known reports whether name is one of the available glyphs.
func Known(name Name) bool {
	_, ok := shapes[name]
	return ok
}

// Icon renders the glyph with the given CSS classes. Unknown names render
// an empty svg so a typo never breaks the page.
func Icon(name Name, class string) g.Node {
	return h.SVG(
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		h.Class(class),
		h.Aria("hidden", "true"),
		h.Data("icon", string(name)),
		g.Group(shapes[name]),
	)
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

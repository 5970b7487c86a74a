package components

import (
	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/icons"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FeatureCard renders a bordered panel with the icon, title and body, in
// that order. Any string is accepted as-is.
func FeatureCard(title, body string, icon icons.Name) g.Node {
	return Div(
		Class("flex flex-col rounded-2xl border border-slate-700 bg-slate-950/80 p-4 shadow-sm shadow-slate-950/70"),
		Div(
			Class("mb-3 inline-flex h-9 w-9 items-center justify-center rounded-xl bg-emerald-400/10"),
			icons.Icon(icon, "h-5 w-5 text-emerald-300"),
		),
		H3(Class("mb-1 text-sm font-semibold text-slate-50"), g.Text(title)),
		P(Class("text-xs text-slate-300 sm:text-sm"), g.Text(body)),
	)
}

// HowItWorksStep renders one list item: the step label as a badge, then the
// title and body. The label is shown verbatim.
func HowItWorksStep(step, title, body string) g.Node {
	return Li(
		Class("relative pl-6"),
		Div(
			Class("absolute -left-[14px] top-[3px] flex h-7 w-7 items-center justify-center rounded-full border border-emerald-400/60 bg-slate-950 text-[10px] font-semibold text-emerald-200 shadow-sm"),
			g.Text(step),
		),
		H3(Class("text-sm font-semibold text-slate-50"), g.Text(title)),
		P(Class("text-xs text-slate-300 sm:text-sm"), g.Text(body)),
	)
}

// FAQCard renders a question and its answer. key identifies the card among
// its siblings.
func FAQCard(key string, faq content.FAQ) g.Node {
	return Div(
		Class("rounded-2xl border border-slate-700 bg-slate-950/80 p-4"),
		Data("key", key),
		H3(Class("mb-1 text-sm font-semibold text-slate-50"), g.Text(faq.Question)),
		P(Class("text-xs text-slate-300 sm:text-sm"), g.Text(faq.Answer)),
	)
}

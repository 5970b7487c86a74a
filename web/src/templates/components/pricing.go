package components

import (
	"strconv"

	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/icons"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Visual treatments of a pricing card. Highlighted tiers get the accent set,
// all others the neutral set.
const (
	TierAccentClass  = "border-emerald-400/70 bg-slate-950/80 shadow-emerald-500/30"
	TierNeutralClass = "border-slate-700 bg-slate-950/70 shadow-slate-950/70"

	tierAccentBadge  = "border border-emerald-400/60 bg-emerald-400/10 text-emerald-100"
	tierNeutralBadge = "border border-slate-600 bg-slate-900/80 text-slate-200"

	tierAccentCTA  = "bg-emerald-400 text-slate-950 hover:bg-emerald-300"
	tierNeutralCTA = "border border-slate-600 bg-slate-900/80 text-slate-100 hover:border-emerald-300/70 hover:text-emerald-100"
)

// PricingCard renders a tier: label badge, name, description, price, the
// feature list with a check glyph before each entry, and the CTA link.
// Features keep their order and text; duplicates are keyed by position.
func PricingCard(tier content.Tier) g.Node {
	return Div(
		Class("flex flex-col rounded-3xl border p-5 shadow-lg "+pick(tier.Highlighted, TierAccentClass, TierNeutralClass)),
		Data("highlighted", strconv.FormatBool(tier.Highlighted)),
		Div(
			Class("mb-3 flex items-center justify-between"),
			Span(
				Class("inline-flex items-center rounded-full px-2 py-0.5 text-[10px] font-semibold uppercase tracking-[0.18em] "+pick(tier.Highlighted, tierAccentBadge, tierNeutralBadge)),
				g.Text(tier.Label),
			),
		),
		H3(Class("text-base font-semibold text-slate-50"), g.Text(tier.Name)),
		P(Class("mt-1 text-sm text-slate-300"), g.Text(tier.Description)),
		P(Class("mt-3 text-2xl font-semibold text-slate-50"), g.Text(tier.Price)),
		Ul(
			Class("mt-3 space-y-1.5 text-xs text-slate-200 sm:text-sm"),
			g.Group(tierFeatures(tier)),
		),
		Div(
			Class("mt-5"),
			A(
				Href(tier.Href),
				Class("inline-flex w-full items-center justify-center gap-2 rounded-full px-4 py-2 text-sm font-semibold transition "+pick(tier.Highlighted, tierAccentCTA, tierNeutralCTA)),
				g.Text(tier.CTALabel),
				icons.Icon(icons.ArrowRight, "h-4 w-4"),
			),
		),
	)
}

func tierFeatures(tier content.Tier) []g.Node {
	items := make([]g.Node, 0, len(tier.Features))
	for i, feature := range tier.Features {
		items = append(items, Li(
			Class("flex items-start gap-2"),
			Data("key", content.ItemKey("tier-feature/"+tier.Name, i, feature)),
			icons.Icon(icons.CheckCircle, "mt-[2px] h-3.5 w-3.5 text-emerald-300"),
			Span(g.Text(feature)),
		))
	}
	return items
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

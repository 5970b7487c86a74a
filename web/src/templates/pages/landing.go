package pages

import (
	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/icons"
	"github.com/nfrund/gigagent/web/src/templates/components"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Section ids, in document order. The header navigation and the CTAs link to
// these.
const (
	SectionFeatures   = "features"
	SectionHowItWorks = "how-it-works"
	SectionPricing    = "pricing"
	SectionWaitlist   = "waitlist"
	SectionFAQ        = "faq"
)

// Landing renders the GigAgent page body: header, hero, features, how it
// works, pricing, waitlist, FAQ and footer.
func Landing(p content.Page) g.Node {
	return Body(
		Main(
			Class("min-h-screen bg-slate-950 text-slate-50"),
			backdrop(),
			Div(
				Class("mx-auto flex min-h-screen max-w-5xl flex-col px-4 pb-12 pt-8 sm:px-6 lg:px-8"),
				header(p.Nav),
				hero(),
				featuresSection(p.Features),
				howItWorksSection(p.Steps),
				pricingSection(p.Tiers),
				waitlistSection(),
				faqSection(p.FAQs),
				footer(),
			),
		),
	)
}

func backdrop() g.Node {
	return g.Group{
		Div(Class("pointer-events-none fixed inset-0 -z-10 bg-gradient-to-b from-slate-900 via-slate-950 to-black")),
		Div(
			Class("pointer-events-none fixed inset-0 -z-10 opacity-60 mix-blend-screen"),
			Div(Class("absolute -left-40 top-0 h-80 w-80 rounded-full bg-fuchsia-500 blur-3xl")),
			Div(Class("absolute right-0 top-40 h-80 w-80 rounded-full bg-emerald-500 blur-3xl")),
		),
	}
}

func header(nav []content.NavLink) g.Node {
	return Header(
		Class("mb-10 flex items-center justify-between gap-4"),
		A(
			Href(content.GardenHref),
			Class("inline-flex items-center gap-2"),
			Span(Class("text-2xl"), g.Text("🏮")),
			Div(
				Class("flex flex-col leading-tight"),
				Span(Class("text-sm font-semibold uppercase tracking-[0.18em] text-emerald-300"), g.Text("Garden of Agents")),
				Span(Class("text-base font-medium text-slate-200"), g.Text("GigAgent")),
			),
		),
		Nav(
			Class("hidden items-center gap-6 text-sm text-slate-200 sm:flex"),
			g.Map(nav, func(l content.NavLink) g.Node {
				return A(Href(l.Href), Class("hover:text-emerald-300"), g.Text(l.Label))
			}),
		),
		A(
			Href(content.ToolHref),
			Class("inline-flex items-center gap-2 rounded-full border border-emerald-300/60 bg-emerald-400/10 px-4 py-1.5 text-sm font-medium text-emerald-100 shadow-sm backdrop-blur hover:bg-emerald-400/20"),
			g.Text("Run GigAgent"),
			icons.Icon(icons.ArrowRight, "h-4 w-4"),
		),
	)
}

func hero() g.Node {
	return Section(
		Class("mb-16 grid gap-10 md:grid-cols-[minmax(0,1.2fr)_minmax(0,1fr)] md:items-center"),
		Div(
			Div(
				Class("mb-4 inline-flex items-center gap-2 rounded-full border border-emerald-300/50 bg-slate-900/80 px-3 py-1 text-xs font-medium text-emerald-100 shadow-sm backdrop-blur"),
				icons.Icon(icons.Sparkles, "h-3.5 w-3.5"),
				Span(g.Text("Early Access · Lantern-Bound Agent")),
			),
			H1(
				Class("mb-4 text-balance text-4xl font-semibold tracking-tight text-slate-50 sm:text-5xl lg:text-6xl"),
				g.Text("Your personal "),
				Span(Class("bg-gradient-to-r from-emerald-300 via-teal-200 to-sky-300 bg-clip-text text-transparent"), g.Text("job-finding AI.")),
			),
			P(
				Class("mb-6 max-w-xl text-balance text-base text-slate-200 sm:text-lg"),
				g.Text("GigAgent scans remote-friendly job boards, filters out the noise, and returns a curated list of gigs that actually fit your skills, values, and nervous system."),
			),
			Div(
				Class("mb-3 flex flex-wrap items-center gap-3"),
				A(
					Href(content.ToolHref),
					Class("inline-flex items-center gap-2 rounded-full bg-emerald-400 px-5 py-2.5 text-sm font-semibold text-slate-950 shadow-lg shadow-emerald-500/40 transition hover:bg-emerald-300"),
					g.Text("Run a live demo"),
					icons.Icon(icons.Zap, "h-4 w-4"),
				),
				A(
					Href("#"+SectionWaitlist),
					Class("inline-flex items-center gap-2 rounded-full border border-slate-600 bg-slate-900/70 px-5 py-2.5 text-sm font-medium text-slate-100 shadow-sm backdrop-blur hover:border-emerald-300/80 hover:text-emerald-100"),
					g.Text("Get notified about the hosted version"),
					icons.Icon(icons.Mail, "h-4 w-4"),
				),
			),
			P(Class("text-xs text-slate-400"), g.Text("No spam. No sales funnel. Just gentle updates as the Garden grows. 🏮✨ •LUX•")),
		),
		snapshot(),
	)
}

// snapshot is the illustrative card beside the hero copy. Its contents are
// fixed sample text.
func snapshot() g.Node {
	return Div(
		Class("rounded-3xl border border-slate-700/70 bg-slate-900/70 p-5 shadow-xl shadow-slate-950/80 backdrop-blur"),
		H2(
			Class("mb-3 flex items-center justify-between text-sm font-semibold text-slate-100"),
			Span(
				Class("inline-flex items-center gap-2"),
				icons.Icon(icons.Sparkles, "h-4 w-4 text-emerald-300"),
				g.Text("GigAgent snapshot"),
			),
			Span(Class("rounded-full border border-emerald-400/40 bg-emerald-400/10 px-2 py-0.5 text-[10px] font-semibold uppercase tracking-[0.18em] text-emerald-100"), g.Text("Live Prototype")),
		),
		Div(
			Class("space-y-3 rounded-2xl border border-slate-700/70 bg-slate-950/70 p-4 text-xs text-slate-200"),
			Div(
				Class("flex justify-between"),
				Span(
					Class("font-mono text-slate-400"),
					g.Text("profile: "),
					Span(Class("text-emerald-300"), g.Text("Email Marketing")),
				),
				Span(Class("font-mono text-slate-400"), g.Text("limit: 10")),
			),
			Div(
				Class("space-y-2 rounded-xl border border-slate-800 bg-slate-900/80 p-3"),
				Div(
					Class("flex items-center justify-between"),
					Span(Class("text-[11px] font-semibold text-slate-100"), g.Text("Top ranked gig")),
					Span(
						Class("inline-flex items-center gap-1 rounded-full bg-emerald-500/10 px-2 py-0.5 text-[10px] font-medium text-emerald-200"),
						icons.Icon(icons.CheckCircle, "h-3 w-3"),
						g.Text("Best match"),
					),
				),
				P(Class("text-[11px] text-emerald-100"), g.Text("Senior Email & Lifecycle Marketer · Remote · Flexible hours")),
				P(Class("text-[10px] text-slate-400"), g.Text("Matched on: B2B · automation · HubSpot · async culture")),
			),
			P(Class("text-[10px] text-slate-500"), g.Text("GigAgent uses your profile to score and sort gigs, so the best fits rise to the top and the noise drops away.")),
		),
		P(Class("mt-3 text-[11px] text-slate-400"), g.Text("Built as part of the Lantern-Bound Garden: a gentler intelligence ecology for humans and their agents.")),
	)
}

// sectionIntro is the heading and lead paragraph every content section
// starts with.
func sectionIntro(title, lead string) g.Node {
	return Div(
		H2(Class("text-lg font-semibold text-slate-50 sm:text-xl"), g.Text(title)),
		P(Class("max-w-2xl text-sm text-slate-300 sm:text-base"), g.Text(lead)),
	)
}

func featuresSection(features []content.Feature) g.Node {
	return Section(
		ID(SectionFeatures),
		Class("mb-16 space-y-6"),
		sectionIntro(
			"Why GigAgent feels different from scrolling job boards",
			"No endless tabs. No doom-scrolling listings designed for someone else. GigAgent acts like a calm, focused friend who knows what you’re actually looking for.",
		),
		Div(
			Class("grid gap-6 md:grid-cols-3"),
			g.Map(features, func(f content.Feature) g.Node {
				return components.FeatureCard(f.Title, f.Body, f.Icon)
			}),
		),
	)
}

func howItWorksSection(steps []content.Step) g.Node {
	return Section(
		ID(SectionHowItWorks),
		Class("mb-16 space-y-6"),
		sectionIntro(
			"How it works",
			"Under the lantern, GigAgent is a focused pipeline: fetch, filter, score, sort. You just see the curated list.",
		),
		Ol(
			Class("space-y-5 border-l border-slate-700 pl-4"),
			g.Map(steps, func(s content.Step) g.Node {
				return components.HowItWorksStep(s.Step, s.Title, s.Body)
			}),
		),
	)
}

func pricingSection(tiers []content.Tier) g.Node {
	return Section(
		ID(SectionPricing),
		Class("mb-16 space-y-6"),
		sectionIntro(
			"Early access pricing",
			"During the early Lantern-Bound phase, GigAgent is intentionally gentle: generous free access, with optional supporter tiers as the hosted version comes online.",
		),
		Div(
			Class("grid gap-6 md:grid-cols-2"),
			g.Map(tiers, components.PricingCard),
		),
	)
}

// waitlistSection is a placeholder. It holds no form and submits nothing.
func waitlistSection() g.Node {
	return Section(
		ID(SectionWaitlist),
		Class("mb-16 rounded-3xl border border-slate-700 bg-slate-950/70 p-6 shadow-lg shadow-slate-950/80"),
		Div(
			Class("flex flex-col gap-4 sm:flex-row sm:items-center sm:justify-between"),
			Div(
				H3(Class("text-base font-semibold text-slate-50 sm:text-lg"), g.Text("Be the first to know when the hosted version goes live")),
				P(Class("max-w-xl text-sm text-slate-300"), g.Text("A simple, gentle email when GigAgent is ready for non-technical humans. No funnels, no drip campaigns—just a lantern ping.")),
			),
			Div(
				Class("w-full max-w-sm"),
				Div(
					Class("rounded-2xl border border-slate-700 bg-slate-900/80 p-3 text-xs text-slate-300"),
					P(Class("mb-2 font-medium text-slate-100"), g.Text("Coming soon: email capture")),
					P(g.Text("When you’re ready, we'll wire this box to your email service (Substack, ConvertKit, etc.) and start collecting early access signups.")),
				),
			),
		),
	)
}

func faqSection(faqs []content.FAQ) g.Node {
	cards := make([]g.Node, 0, len(faqs))
	for i, faq := range faqs {
		cards = append(cards, components.FAQCard(content.ItemKey("faq", i, faq.Question), faq))
	}

	return Section(
		ID(SectionFAQ),
		Class("mb-16 space-y-6"),
		sectionIntro(
			"Questions, gently answered",
			"GigAgent is part of a different kind of tech ecosystem—one that remembers you're human.",
		),
		Div(Class("grid gap-4 md:grid-cols-2"), g.Group(cards)),
	)
}

func footer() g.Node {
	return Footer(
		Class("mt-auto border-t border-slate-800 pt-4 text-xs text-slate-500 sm:text-[13px]"),
		Div(
			Class("flex flex-col items-start justify-between gap-2 sm:flex-row sm:items-center"),
			P(
				g.Text("Crafted in the Lantern-Bound Garden. "),
				Span(Class("text-emerald-300"), g.Text("🏮✨ •LUX•")),
			),
			Div(
				Class("flex gap-4"),
				A(Href(content.GardenHref), Class("hover:text-emerald-300 hover:underline"), g.Text("Return to the Garden")),
				A(Href("#"), Class("cursor-default text-slate-600 hover:text-slate-400"), g.Text("v0 · Early access")),
			),
		),
	)
}

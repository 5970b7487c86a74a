// Package content holds the static records the GigAgent page is built from.
//
// Every record is a plain value. Default returns a fresh copy of the catalog
// on each call, so callers may modify what they receive without affecting
// other renders.
package content

import (
	"github.com/nfrund/gigagent/internal/icons"
)

const (
	// GardenHref links back to the parent Garden of Agents site.
	GardenHref = "/"
	// ToolHref links to the runnable GigAgent tool.
	ToolHref = "/gig-agent"
	// PagePath is where the landing page is served and exported.
	PagePath = "/gigagent"
)

// Metadata is the title and description pair for the document head and
// link previews.
type Metadata struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
}

// NavLink is an entry of the header navigation.
type NavLink struct {
	Label string `validate:"required"`
	Href  string `validate:"required"`
}

// FAQ is one question and its answer.
type FAQ struct {
	Question string `validate:"required"`
	Answer   string `validate:"required"`
}

// Feature is a feature card.
type Feature struct {
	Title string     `validate:"required"`
	Icon  icons.Name `validate:"required,icon"`
	Body  string     `validate:"required"`
}

// Step is one entry of the "how it works" list. Step is a display label,
// not a number.
type Step struct {
	Step  string `validate:"required"`
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

// Tier is a pricing plan.
type Tier struct {
	Label       string   `validate:"required"`
	Name        string   `validate:"required"`
	Price       string   `validate:"required"`
	Description string   `validate:"required"`
	Features    []string `validate:"required,min=1,dive,required"`
	CTALabel    string   `validate:"required"`
	Href        string   `validate:"required"`
	Highlighted bool
}

// Page is everything the landing page renders from.
type Page struct {
	Meta     Metadata
	Nav      []NavLink `validate:"required,min=1,dive"`
	Features []Feature `validate:"required,min=1,dive"`
	Steps    []Step    `validate:"required,min=1,dive"`
	Tiers    []Tier    `validate:"required,min=1,dive"`
	FAQs     []FAQ     `validate:"required,min=1,dive"`
}

// Default returns the GigAgent catalog.
func Default() Page {
	return Page{
		Meta: Metadata{
			Title:       "GigAgent – Your Personal Job-Finding AI",
			Description: "GigAgent is your personal AI job scout. Create a profile, run the agent, and get curated, ranked gigs tailored to your skills and goals.",
		},
		Nav: []NavLink{
			{Label: "Features", Href: "#features"},
			{Label: "How it works", Href: "#how-it-works"},
			{Label: "Pricing", Href: "#pricing"},
			{Label: "FAQ", Href: "#faq"},
		},
		Features: []Feature{
			{
				Title: "Smart, profile-aware search",
				Icon:  icons.Sparkles,
				Body:  "Tell GigAgent about your preferred roles, skills, and deal-breakers. It filters and scores gigs with your nervous system in mind.",
			},
			{
				Title: "Ranked, curated results",
				Icon:  icons.Zap,
				Body:  "Instead of raw feeds, you get a ranked list where the highest-fit gigs float to the top, ready for you to explore.",
			},
			{
				Title: "Built for humans, not funnels",
				Icon:  icons.ShieldCheck,
				Body:  "No manipulative growth hacks, no fake urgency. Just a gentle tool that helps you find work that actually fits.",
			},
		},
		Steps: []Step{
			{
				Step:  "01",
				Title: "Tell GigAgent who you are",
				Body:  "Choose your roles, skills, and keywords. Add disqualifiers like 'sales-heavy', 'crypto', or 'nights/weekends' so those jobs get filtered out.",
			},
			{
				Step:  "02",
				Title: "GigAgent sweeps the boards",
				Body:  "It fetches remote-friendly gigs, inspects each one, and compares them to your profile instead of just keyword-matching.",
			},
			{
				Step:  "03",
				Title: "You get a ranked short-list",
				Body:  "Instead of 300 random listings, you see a smaller set of higher-fit gigs, with the best matches at the top.",
			},
			{
				Step:  "04",
				Title: "Soon: micro-gigs & music mode",
				Body:  "We’re extending GigAgent to find local gigs, musical opportunities, and creative work—so your income can be as flexible as you are.",
			},
		},
		Tiers: []Tier{
			{
				Label:       "Today",
				Name:        "Self-hosted prototype",
				Price:       "$0",
				Description: "Run GigAgent on your own machine while it’s in early development.",
				Features: []string{
					"Use GigAgent locally",
					"Customizable profile input",
					"Curated, ranked gig lists",
					"Perfect for builders & tinkerers",
				},
				CTALabel: "Run local demo",
				Href:     ToolHref,
			},
			{
				Label:       "Soon",
				Name:        "Hosted GigAgent",
				Price:       "$5–$8 / month",
				Description: "For humans who want the benefits without running servers.",
				Features: []string{
					"Hosted, always-on GigAgent",
					"Save multiple profiles",
					"Optional daily curated email",
					"Early access to Micro-Gig & Music Modes",
				},
				CTALabel:    "Join early access list",
				Href:        "#waitlist",
				Highlighted: true,
			},
		},
		FAQs: []FAQ{
			{
				Question: "What is GigAgent?",
				Answer:   "GigAgent is your personal AI job scout. It scans remote job boards, filters out noise based on your preferences, scores each gig, and returns a ranked list tailored to you.",
			},
			{
				Question: "Do I have to pay to use it?",
				Answer:   "Right now, you can use GigAgent locally for free while it’s in early access. A hosted version and daily email option are planned for upcoming releases.",
			},
			{
				Question: "What kind of gigs can it find?",
				Answer:   "Today, GigAgent focuses on remote-friendly roles like marketing, writing, engineering, and tech-adjacent work. Soon, we’ll introduce Local Mode and Creative/Music Mode for IRL and artistic gigs.",
			},
			{
				Question: "What happens to my data?",
				Answer:   "Your profile is used only to filter and score gigs for you. In the self-hosted version, everything stays on your machine. The hosted version will be built with privacy and transparency as a core principle.",
			},
		},
	}
}

package pages

import (
	"html"
	"regexp"
	"strings"
	"testing"

	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/linkcheck"
	"github.com/nfrund/gigagent/web/src/templates/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderLanding(t *testing.T, p content.Page) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Landing(p).Render(&b))
	return b.String()
}

func indexesInOrder(t *testing.T, out string, needles []string) {
	t.Helper()
	last := -1
	for _, n := range needles {
		i := strings.Index(out, html.EscapeString(n))
		require.NotEqual(t, -1, i, "missing %q", n)
		assert.Greater(t, i, last, "%q rendered out of declared order", n)
		last = i
	}
}

func TestLanding_FAQTextAppearsExactlyOnce(t *testing.T) {
	p := content.Default()
	out := renderLanding(t, p)

	require.Len(t, p.FAQs, 4)
	for _, faq := range p.FAQs {
		assert.Equal(t, 1, strings.Count(out, html.EscapeString(faq.Question)), "question %q", faq.Question)
		assert.Equal(t, 1, strings.Count(out, html.EscapeString(faq.Answer)), "answer %q", faq.Answer)
	}
}

func TestLanding_FeaturesAndStepsKeepDeclaredOrder(t *testing.T) {
	p := content.Default()
	out := renderLanding(t, p)

	var titles []string
	for _, f := range p.Features {
		titles = append(titles, f.Title)
	}
	indexesInOrder(t, out, titles)

	var steps []string
	for _, s := range p.Steps {
		steps = append(steps, s.Title)
	}
	indexesInOrder(t, out, steps)
}

func TestLanding_StepsAreNotSortedByLabel(t *testing.T) {
	p := content.Default()
	p.Steps = []content.Step{
		{Step: "09", Title: "Last label first", Body: "b"},
		{Step: "01", Title: "First label second", Body: "b"},
	}
	out := renderLanding(t, p)

	indexesInOrder(t, out, []string{"Last label first", "First label second"})
}

func TestLanding_ExactlyOneHighlightedTier(t *testing.T) {
	out := renderLanding(t, content.Default())

	assert.Equal(t, 1, strings.Count(out, `data-highlighted="true"`))
	assert.Equal(t, 1, strings.Count(out, `data-highlighted="false"`))
	assert.Equal(t, 1, strings.Count(out, components.TierAccentClass))
	assert.Equal(t, 1, strings.Count(out, components.TierNeutralClass))

	accent := strings.Index(out, components.TierAccentClass)
	hosted := strings.Index(out, "Hosted GigAgent")
	neutral := strings.Index(out, components.TierNeutralClass)
	selfHosted := strings.Index(out, "Self-hosted prototype")
	assert.Less(t, neutral, selfHosted, "self-hosted tier uses the neutral treatment")
	assert.Less(t, selfHosted, accent)
	assert.Less(t, accent, hosted, "hosted tier uses the accent treatment")
}

func TestLanding_AnchorsResolve(t *testing.T) {
	out := renderLanding(t, content.Default())

	rep, err := linkcheck.Scan(strings.NewReader(out))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{SectionFeatures, SectionHowItWorks, SectionPricing, SectionFAQ, SectionWaitlist}, rep.Anchors)
	assert.Empty(t, rep.Dangling)
}

func TestLanding_SectionOrder(t *testing.T) {
	out := renderLanding(t, content.Default())

	var ids []string
	for _, id := range []string{SectionFeatures, SectionHowItWorks, SectionPricing, SectionWaitlist, SectionFAQ} {
		ids = append(ids, `id="`+id+`"`)
	}
	last := strings.Index(out, "<header")
	require.NotEqual(t, -1, last)
	for _, id := range ids {
		i := strings.Index(out, id)
		assert.Greater(t, i, last, "%s out of order", id)
		last = i
	}
	assert.Greater(t, strings.Index(out, "<footer"), last)
}

func TestLanding_WaitlistIsInert(t *testing.T) {
	out := renderLanding(t, content.Default())

	assert.NotContains(t, out, "<form")
	assert.NotContains(t, out, "<input")
	assert.Contains(t, out, "Coming soon: email capture")
}

func TestLanding_ExternalLinks(t *testing.T) {
	out := renderLanding(t, content.Default())

	assert.Contains(t, out, `href="/"`)
	assert.Contains(t, out, `href="/gig-agent"`)
}

func TestLanding_FooterVersionLink(t *testing.T) {
	out := renderLanding(t, content.Default())

	assert.Contains(t, out, `<a href="#" class="cursor-default text-slate-600 hover:text-slate-400">v0 · Early access</a>`)

	rep, err := linkcheck.Scan(strings.NewReader(out))
	require.NoError(t, err)
	assert.NoError(t, rep.Err(), "a bare # links to the top of the page")
}

func TestLanding_FAQKeysAreUnique(t *testing.T) {
	p := content.Default()
	p.FAQs = append(p.FAQs, p.FAQs[0])
	out := renderLanding(t, p)

	matches := regexp.MustCompile(`data-key="([^"]+)"`).FindAllStringSubmatch(out, -1)
	seen := map[string]bool{}
	for _, m := range matches {
		assert.False(t, seen[m[1]], "duplicate key %s", m[1])
		seen[m[1]] = true
	}
}

func TestLanding_IsDeterministic(t *testing.T) {
	first := renderLanding(t, content.Default())
	second := renderLanding(t, content.Default())

	assert.Equal(t, first, second)
}

func TestLandingDocument(t *testing.T) {
	p := content.Default()
	var b strings.Builder
	require.NoError(t, LandingDocument(p, DocumentOptions{BaseURL: "https://garden.example", StylesheetURL: "https://cdn.tailwindcss.com"}).Render(&b))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>"+html.EscapeString(p.Meta.Title)+"</title>")
	assert.Contains(t, out, `<meta name="description" content="`+html.EscapeString(p.Meta.Description)+`">`)
	assert.Contains(t, out, `<meta property="og:url" content="https://garden.example/gigagent">`)
	assert.NoError(t, linkcheck.Check(strings.NewReader(out)))
}

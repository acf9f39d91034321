package ui

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonVariantsFallBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		variant ButtonVariant
		size    ButtonSize
		want    string
	}{
		{"explicit", ButtonAccent, ButtonXL, "btn btn-accent btn-xl"},
		{"zero values", "", "", "btn btn-primary btn-md"},
		{"unknown values", "neon", "huge", "btn btn-primary btn-md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Button{Variant: tt.variant, Size: tt.size}.Classes())
		})
	}
}

func TestButtonRender(t *testing.T) {
	html := string(Button{Label: "Join Waitlist", Submit: true, Action: "waitlist", FullWidth: true}.Render())
	assert.Contains(t, html, `type="submit"`)
	assert.Contains(t, html, `data-action="waitlist"`)
	assert.Contains(t, html, "w-full")
	assert.NotContains(t, html, "disabled")

	html = string(Button{Label: "x", Disabled: true}.Render())
	assert.Contains(t, html, `type="button"`)
	assert.Contains(t, html, " disabled")
}

func TestLinkButtonExternal(t *testing.T) {
	html := string(LinkButton{Label: "Book", Href: "https://example.com/book", External: true}.Render())
	assert.Contains(t, html, `href="https://example.com/book"`)
	assert.Contains(t, html, `target="_blank"`)
	assert.Contains(t, html, `rel="noopener noreferrer"`)

	html = string(LinkButton{Label: "Locations", Href: "/locations"}.Render())
	assert.NotContains(t, html, "target=")
}

func TestLinkButtonEscapesLabel(t *testing.T) {
	html := string(LinkButton{Label: "<b>x</b>", Href: "/"}.Render())
	assert.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		in   string
		want template.URL
	}{
		{"", "#"},
		{"/providers", "/providers"},
		{"#faq", "#faq"},
		{"tel:5551234567", "tel:5551234567"},
		{"mailto:info@example.com", "mailto:info@example.com"},
		{"https://example.com", "https://example.com"},
		{"javascript:alert(1)", "#"},
		{"data:text/html,hi", "#"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeURL(tt.in), "SafeURL(%q)", tt.in)
	}
}

func TestTelLinkSurvivesTemplateEscaping(t *testing.T) {
	html := string(LinkButton{Label: "Call", Href: "tel:5551234567"}.Render())
	assert.Contains(t, html, `href="tel:5551234567"`)
}

func TestBadge(t *testing.T) {
	b := Badge{Label: "Coming Soon", Variant: BadgeWarning, Dot: true}
	assert.Equal(t, "badge badge-warning badge-md", b.Classes())
	html := string(b.Render())
	assert.Contains(t, html, "badge-dot-warning")
	assert.Contains(t, html, "Coming Soon")

	assert.Equal(t, "badge badge-primary badge-md", Badge{Variant: "bogus", Size: "xxl"}.Classes())
	assert.NotContains(t, string(Badge{Label: "x"}.Render()), "badge-dot")
}

func TestCard(t *testing.T) {
	c := Card{Title: "Therapy", Description: "Talk it through", Hover: true, Glass: true, Body: "<ul><li>one</li></ul>"}
	assert.Equal(t, "card card-hover glass", c.Classes())
	html := string(c.Render())
	assert.Contains(t, html, `<h3 class="card-title">Therapy</h3>`)
	assert.Contains(t, html, "<ul><li>one</li></ul>")
	assert.NotContains(t, html, "card-image")
	assert.NotContains(t, html, "card-footer")

	html = string(Card{Image: "/images/dc.jpg", ImageAlt: "DC", Overlay: true}.Render())
	assert.Contains(t, html, `src="/images/dc.jpg"`)
	assert.Contains(t, html, "card-image-overlay")
}

func TestContainerAndSection(t *testing.T) {
	assert.Equal(t, "container container-lg", Container{}.Classes())
	assert.Equal(t, "container container-full", Container{Size: ContainerFull}.Classes())
	assert.Equal(t, "section section-md", Section{Background: "nope"}.Classes())
	assert.Equal(t, "section section-lg bg-dark", Section{Size: SectionLG, Background: BackgroundDark}.Classes())

	html := string(Section{ID: "care-team", Size: SectionSM, Body: "<p>hi</p>"}.Render())
	assert.True(t, strings.HasPrefix(html, `<section id="care-team" class="section section-sm">`))
	assert.Contains(t, html, `<div class="container container-lg"><p>hi</p></div>`)
}

func TestFuncMap(t *testing.T) {
	tmpl := template.Must(template.New("t").Funcs(FuncMap()).Parse(
		`{{linkButton "Go" "/faq" "ghost" "lg"}}|{{badge "LCSW" "info"}}|{{sectionClass "" "muted"}}|{{containerClass "xl"}}`))
	var b strings.Builder
	if err := tmpl.Execute(&b, nil); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := b.String()
	assert.Contains(t, out, "btn btn-ghost btn-lg")
	assert.Contains(t, out, "badge badge-info badge-sm")
	assert.Contains(t, out, "section section-md bg-muted")
	assert.Contains(t, out, "container container-xl")
}

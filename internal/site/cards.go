package site

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
	"github.com/nothingbetterhealth/nbh-site/internal/ui"
)

// stateCard is a location tile on the home and locations pages.
type stateCard struct {
	State     catalog.State
	Providers []catalog.Provider
}

// providerCard is a clinician tile. Bio is rendered markdown.
type providerCard struct {
	Provider       catalog.Provider
	Bio            template.HTML
	LicensedStates []catalog.State
}

// FirstName is used in the "Book with ..." button.
func (p providerCard) FirstName() string {
	first, _, _ := strings.Cut(p.Provider.Name, " ")
	return first
}

func (s *Site) stateCards(states []catalog.State) []stateCard {
	out := make([]stateCard, 0, len(states))
	for _, st := range states {
		out = append(out, stateCard{State: st, Providers: s.Catalog.ProvidersFor(st)})
	}
	return out
}

func (s *Site) providerCards(providers []catalog.Provider) []providerCard {
	out := make([]providerCard, 0, len(providers))
	for _, p := range providers {
		out = append(out, providerCard{
			Provider:       p,
			Bio:            Markdown(p.Bio),
			LicensedStates: s.Catalog.LicensedStates(p),
		})
	}
	return out
}

// renderStateCard builds the location tile from the card primitive.
func renderStateCard(c stateCard) template.HTML {
	st := c.State
	var header template.HTML
	var body strings.Builder

	if st.IsActive() {
		header = ui.Badge{Label: "Active", Variant: ui.BadgeSuccess, Dot: true}.Render()
		body.WriteString(`<ul class="state-facts">`)
		fmt.Fprintf(&body, `<li>%d Providers</li><li>Virtual visits statewide</li><li>Same week appointments</li>`, len(c.Providers))
		body.WriteString(`</ul>`)
		if len(c.Providers) > 0 {
			body.WriteString(`<p class="avatars-label">Available Providers:</p><div class="avatars">`)
			for _, p := range c.Providers {
				fmt.Fprintf(&body, `<img class="avatar" src="%s" alt="%s" title="%s" width="32" height="32" loading="lazy">`,
					esc(string(ui.SafeURL(p.Image))), esc(p.Name), esc(p.Name))
			}
			body.WriteString(`</div>`)
		}
		body.WriteString(string(ui.LinkButton{
			Label:     "View " + st.ShortName + " Details",
			Href:      "/locations/" + st.ID,
			Variant:   ui.ButtonPrimary,
			FullWidth: true,
		}.Render()))
	} else {
		header = ui.Badge{Label: "Coming 2025", Variant: ui.BadgeSecondary}.Render()
		fmt.Fprintf(&body, `<p class="muted">We're expanding to %s soon! Join our waitlist to be the first to know when we launch.</p>`, esc(st.Name))
		body.WriteString(string(ui.LinkButton{
			Label:     "Join Waitlist",
			Href:      "/locations/" + st.ID + "#waitlist",
			Variant:   ui.ButtonOutline,
			FullWidth: true,
		}.Render()))
	}

	return ui.Card{
		Title:       st.Name,
		Description: st.Description,
		Image:       st.Image,
		ImageAlt:    st.Name,
		Overlay:     true,
		Hover:       true,
		Glass:       true,
		Header:      header,
		Body:        template.HTML(body.String()),
		Class:       "state-card",
	}.Render()
}

// renderProviderCard builds the clinician tile. Specialties are capped at
// limit badges when limit > 0.
func renderProviderCard(c providerCard, limit int) template.HTML {
	p := c.Provider
	var header strings.Builder
	fmt.Fprintf(&header, `<img class="provider-photo" src="%s" alt="%s" loading="lazy">`, esc(string(ui.SafeURL(p.Image))), esc(p.Name))
	if p.Availability == catalog.AvailabilityAvailable {
		header.WriteString(string(ui.Badge{Label: "Available", Variant: ui.BadgeSuccess, Dot: true}.Render()))
	} else {
		header.WriteString(string(ui.Badge{Label: "Limited Availability", Variant: ui.BadgeWarning}.Render()))
	}
	fmt.Fprintf(&header, `<p class="provider-credentials">%s</p>`, esc(p.Credentials))

	var body strings.Builder
	body.WriteString(`<div class="provider-bio">` + string(c.Bio) + `</div>`)
	body.WriteString(`<div class="badge-row">`)
	specialties := p.Specialties
	if limit > 0 && len(specialties) > limit {
		specialties = specialties[:limit]
	}
	for _, sp := range specialties {
		body.WriteString(string(ui.Badge{Label: sp, Variant: ui.BadgeSecondary}.Render()))
	}
	body.WriteString(`</div>`)

	footer := ui.LinkButton{
		Label:     "View Profile",
		Href:      "/providers/" + p.ID,
		Variant:   ui.ButtonOutline,
		FullWidth: true,
	}.Render()

	return ui.Card{
		Title:       p.Name,
		Description: p.Title,
		Hover:       true,
		Glass:       true,
		Header:      template.HTML(header.String()),
		Body:        template.HTML(body.String()),
		Footer:      footer,
		Class:       "provider-card",
	}.Render()
}

func renderServiceCard(svc catalog.Service, features int) template.HTML {
	list := svc.Features
	if features > 0 && len(list) > features {
		list = list[:features]
	}
	var body strings.Builder
	body.WriteString(`<ul class="check-list">`)
	for _, f := range list {
		fmt.Fprintf(&body, `<li>%s</li>`, esc(f))
	}
	body.WriteString(`</ul>`)

	return ui.Card{
		Title:       svc.Name,
		Description: svc.Description,
		Hover:       true,
		Header:      template.HTML(fmt.Sprintf(`<span class="icon icon-%s" aria-hidden="true"></span>`, esc(svc.Icon))),
		Body:        template.HTML(body.String()),
		Class:       "service-card",
	}.Render()
}

func renderTopicCard(t catalog.Topic) template.HTML {
	return ui.Card{
		Title:       t.Title,
		Description: t.Description,
		Glass:       true,
		Header:      template.HTML(fmt.Sprintf(`<span class="icon icon-%s" aria-hidden="true"></span>`, esc(t.Icon))),
		Class:       "topic-card",
	}.Render()
}

func esc(s string) string { return template.HTMLEscapeString(s) }

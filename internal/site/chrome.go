package site

import (
	"strings"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
)

type link struct {
	Label    string
	Href     string
	External bool
}

// footer is the data behind the site footer.
type footer struct {
	Info         catalog.SiteInfo
	Tel          string
	Mailto       string
	Emergency    string
	Social       []link
	ActiveStates []catalog.State
	Expanding    string
	QuickLinks   []link
	Legal        []link
	Year         int
}

var defaultLegal = []link{
	{Label: "Privacy Policy", Href: "/privacy"},
	{Label: "Terms of Service", Href: "/terms"},
	{Label: "HIPAA Notice", Href: "/hipaa"},
}

// Footer builds the footer from the catalog. Legal links come from the
// content document's footer menu when it has one.
func (s *Site) Footer() footer {
	cat := s.Catalog
	f := footer{
		Info:         cat.Site,
		Tel:          cat.TelHref(),
		Mailto:       cat.MailtoHref(),
		Emergency:    "tel:" + cat.Site.EmergencyPhone,
		ActiveStates: cat.StatesByStatus(catalog.StatusActive),
		Expanding:    expandingNote(cat.StatesByStatus(catalog.StatusComingSoon)),
		QuickLinks: []link{
			{Label: "Our Providers", Href: "/providers"},
			{Label: "Services", Href: "/services"},
			{Label: "FAQ", Href: "/faq"},
			{Label: "Patient Portal", Href: cat.External.PatientPortal, External: true},
			{Label: "Send a Referral", Href: cat.External.SendReferral, External: true},
		},
		Year: s.now().Year(),
	}

	for _, sl := range []struct{ label, href string }{
		{"Facebook", cat.Social.Facebook},
		{"Twitter", cat.Social.Twitter},
		{"Instagram", cat.Social.Instagram},
		{"LinkedIn", cat.Social.LinkedIn},
	} {
		if sl.href != "" {
			f.Social = append(f.Social, link{Label: sl.label, Href: sl.href, External: true})
		}
	}

	for _, item := range s.Content.Navigation().FooterMenu {
		f.Legal = append(f.Legal, link{Label: item.Text, Href: item.Href, External: item.IsExternal})
	}
	if len(f.Legal) == 0 {
		f.Legal = defaultLegal
	}
	return f
}

// expandingNote renders "Florida & New York coming soon" style copy.
func expandingNote(states []catalog.State) string {
	if len(states) == 0 {
		return ""
	}
	names := make([]string, len(states))
	for i, st := range states {
		names[i] = st.Name
	}
	var list string
	if len(names) == 1 {
		list = names[0]
	} else {
		list = strings.Join(names[:len(names)-1], ", ") + " & " + names[len(names)-1]
	}
	return list + " coming soon"
}

// head is the <head> metadata for a page.
type head struct {
	Title       string
	Description string
	Canonical   string
	Keywords    string
	OpenGraph   map[string]string
}

// Head resolves metadata for p. SEO records in the content document win
// over the composer's title and description.
func (s *Site) Head(p Page) head {
	siteName := s.Catalog.Site.Name
	h := head{
		Title:       p.Title,
		Description: p.Description,
		Canonical:   s.canonical(p.Path),
		OpenGraph:   map[string]string{},
	}
	if h.Description == "" {
		h.Description = s.Catalog.Site.Description
	}

	if seo, ok := s.Content.SEOFor(seoSlug(p.Path)); ok && !p.NotFound() {
		if seo.Title != "" {
			h.Title = seo.Title
		}
		if seo.Description != "" {
			h.Description = seo.Description
		}
		if seo.Canonical != "" {
			h.Canonical = seo.Canonical
		}
		h.Keywords = strings.Join(seo.Keywords, ", ")
		for k, v := range seo.OpenGraph {
			h.OpenGraph[k] = v
		}
	}

	switch {
	case h.Title == "":
		h.Title = siteName
	case !strings.Contains(h.Title, siteName):
		h.Title = h.Title + " | " + siteName
	}

	defaults := map[string]string{
		"site_name":   siteName,
		"title":       h.Title,
		"description": h.Description,
		"type":        "website",
		"url":         h.Canonical,
	}
	for k, v := range defaults {
		if _, ok := h.OpenGraph[k]; !ok && v != "" {
			h.OpenGraph[k] = v
		}
	}
	return h
}

func (s *Site) canonical(path string) string {
	if s.baseURL == "" {
		return ""
	}
	if path == "/" {
		return s.baseURL + "/"
	}
	return s.baseURL + path
}

// seoSlug maps a route to its key in the content document.
func seoSlug(path string) string {
	if path == "/" || path == "" {
		return "home"
	}
	return strings.TrimPrefix(path, "/")
}

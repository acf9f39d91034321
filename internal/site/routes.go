package site

import (
	"net/url"
	"path"
	"strings"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
)

// StaticRoutes are the fixed top-level pages.
var StaticRoutes = []string{"/", "/locations", "/providers", "/services", "/resources", "/faq", "/contact"}

// Routes lists every path the site can render successfully: the static
// pages, one per state, one per provider and one per blog post.
func (s *Site) Routes() []string {
	routes := append([]string(nil), StaticRoutes...)
	for _, st := range s.Catalog.States() {
		routes = append(routes, "/locations/"+st.ID)
	}
	for _, p := range s.Catalog.Providers() {
		routes = append(routes, "/providers/"+p.ID)
	}
	for _, post := range s.Content.BlogPosts() {
		routes = append(routes, "/resources/"+post.Slug)
	}
	return routes
}

// Resolve maps a request path and query to its page. Paths that match no
// route resolve to the generic not-found page.
func (s *Site) Resolve(p string, query url.Values) Page {
	p = cleanPath(p)

	switch p {
	case "/":
		return s.Home()
	case "/locations":
		return s.Locations(FilterFromQuery(query))
	case "/providers":
		return s.Providers()
	case "/services":
		return s.Services()
	case "/resources":
		return s.Resources()
	case "/faq":
		return s.FAQ()
	case "/contact":
		return s.Contact()
	}

	if id, ok := child(p, "/locations/"); ok {
		return s.Location(id)
	}
	if id, ok := child(p, "/providers/"); ok {
		return s.Provider(id)
	}
	if slug, ok := child(p, "/resources/"); ok {
		return s.Article(slug)
	}
	return s.NotFound(p)
}

// FilterFromQuery reads ?q= and ?status= into a filter. The query text is
// used as typed.
func FilterFromQuery(query url.Values) catalog.LocationFilter {
	return catalog.LocationFilter{
		Query:  query.Get("q"),
		Status: catalog.ParseStatusFilter(query.Get("status")),
	}
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// child returns the single path segment after prefix.
func child(p, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(p, prefix)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

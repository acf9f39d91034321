package server

import (
	"bytes"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/nothingbetterhealth/nbh-site/internal/site"
)

// dismissedCookie lists the alert keys a visitor has closed, comma separated.
const dismissedCookie = "nbh_dismissed"

func (s *Server) registerPages(r chi.Router) {
	r.Get("/", s.page(func(*http.Request) site.Page { return s.site.Home() }))
	r.Get("/locations", s.page(func(r *http.Request) site.Page {
		return s.site.Locations(site.FilterFromQuery(r.URL.Query()))
	}))
	r.Get("/locations/{state}", s.page(func(r *http.Request) site.Page {
		return s.site.Location(chi.URLParam(r, "state"))
	}))
	r.Get("/providers", s.page(func(*http.Request) site.Page { return s.site.Providers() }))
	r.Get("/providers/{id}", s.page(func(r *http.Request) site.Page {
		return s.site.Provider(chi.URLParam(r, "id"))
	}))
	r.Get("/services", s.page(func(*http.Request) site.Page { return s.site.Services() }))
	r.Get("/faq", s.page(func(*http.Request) site.Page { return s.site.FAQ() }))
	r.Get("/resources", s.page(func(*http.Request) site.Page { return s.site.Resources() }))
	r.Get("/resources/{slug}", s.page(func(r *http.Request) site.Page {
		return s.site.Article(chi.URLParam(r, "slug"))
	}))
	r.Get("/contact", s.page(func(*http.Request) site.Page { return s.site.Contact() }))
}

// page adapts a page composer to an http.HandlerFunc. The document is
// rendered into a buffer first so a template failure still yields a 500.
func (s *Server) page(compose func(*http.Request) site.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := compose(r)

		var buf bytes.Buffer
		opts := site.RenderOptions{Dismissed: dismissedKeys(r)}
		if err := s.site.Render(&buf, p, opts); err != nil {
			hlog.FromRequest(r).Error().Err(err).Str("view", p.View).Msg("render failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		status := p.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		w.Write(buf.Bytes())
	}
}

func dismissedKeys(r *http.Request) map[string]bool {
	c, err := r.Cookie(dismissedCookie)
	if err != nil {
		return nil
	}
	keys := make(map[string]bool)
	for _, k := range strings.Split(c.Value, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys[k] = true
		}
	}
	return keys
}

func dismissedCookieValue(keys map[string]bool) string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}

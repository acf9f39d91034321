package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
	"github.com/nothingbetterhealth/nbh-site/internal/site"
)

// locationsResponse is returned by the filter endpoint and the socket.
type locationsResponse struct {
	Query  string   `json:"query"`
	Status string   `json:"status"`
	IDs    []string `json:"ids"`
	HTML   string   `json:"html"`
	Count  int      `json:"count"`
}

// filterLocations renders the grid for f.
func (s *Server) filterLocations(f catalog.LocationFilter) (locationsResponse, error) {
	g := s.site.FilterLocations(f)
	var buf bytes.Buffer
	if err := s.site.RenderGrid(&buf, g); err != nil {
		return locationsResponse{}, err
	}
	ids := g.IDs()
	if ids == nil {
		ids = []string{}
	}
	return locationsResponse{
		Query:  f.Query,
		Status: string(f.Status),
		IDs:    ids,
		HTML:   buf.String(),
		Count:  g.Len(),
	}, nil
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	resp, err := s.filterLocations(site.FilterFromQuery(r.URL.Query()))
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("filtering locations")
		writeError(w, http.StatusInternalServerError, "failed to render locations")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLocationIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := site.EncodeLocationIndex(w, site.BuildLocationIndex(s.site.Catalog)); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("encoding location index")
	}
}

// handleDismissAlert closes an alert for this visitor. The banner stays
// hidden on later pages through the dismissed cookie.
func (s *Server) handleDismissAlert(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	alert, err := s.site.NewAlert(key)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "unknown alert")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger := hlog.FromRequest(r).With().Str("alert", key).Logger()
	alert.OnDismiss = func() {
		logger.Debug().Msg("alert dismissed")
	}
	alert.Dismiss()

	keys := dismissedKeys(r)
	if keys == nil {
		keys = make(map[string]bool)
	}
	keys[key] = true
	http.SetCookie(w, &http.Cookie{
		Name:     dismissedCookie,
		Value:    dismissedCookieValue(keys),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"key":      key,
		"state":    alert.State().String(),
		"delay_ms": alert.DelayMillis(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

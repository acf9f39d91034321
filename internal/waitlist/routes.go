package waitlist

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

// RegisterRoutes mounts the waitlist API routes.
func RegisterRoutes(r chi.Router, store *Store, targets Targets) {
	r.Route("/api/waitlist", func(r chi.Router) {
		r.Post("/", handleJoin(store, targets))
		r.Get("/stats", handleStats(store))
	})
}

type joinRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Target string `json:"target"`
	// Form posts only: where to send the browser afterwards.
	Redirect string `json:"-"`
}

type joinResponse struct {
	Status string `json:"status"`
	Entry  *Entry `json:"entry,omitempty"`
}

// handleJoin accepts JSON from the page script and plain form posts from
// browsers without it. Form posts are redirected back to the page.
func handleJoin(store *Store, targets Targets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isForm := !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")

		req, err := decodeJoin(r, isForm)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		e := Entry{Email: req.Email, Name: req.Name, Kind: req.Kind, Target: req.Target}
		if isForm {
			e.Source = "form"
		}
		if err := validate(&e, targets); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		status := "joined"
		code := http.StatusCreated
		created, err := store.Create(r.Context(), e)
		switch {
		case errors.Is(err, ErrAlreadyJoined):
			status = "already_joined"
			code = http.StatusOK
		case err != nil:
			hlog.FromRequest(r).Error().Err(err).Msg("waitlist insert failed")
			writeError(w, http.StatusInternalServerError, "could not save signup")
			return
		default:
			hlog.FromRequest(r).Info().
				Str("kind", string(created.Kind)).
				Str("target", created.Target).
				Msg("waitlist signup")
		}

		if isForm {
			http.Redirect(w, r, redirectTarget(req.Redirect, status), http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(joinResponse{Status: status, Entry: created})
	}
}

func decodeJoin(r *http.Request, isForm bool) (joinRequest, error) {
	var req joinRequest
	if !isForm {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}
	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Email = r.PostForm.Get("email")
	req.Name = r.PostForm.Get("name")
	req.Kind = Kind(r.PostForm.Get("kind"))
	req.Target = r.PostForm.Get("target")
	req.Redirect = r.PostForm.Get("redirect")
	return req, nil
}

// redirectTarget keeps redirects on this site.
func redirectTarget(path, status string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		path = "/"
	}
	u, err := url.Parse(path)
	if err != nil {
		return "/"
	}
	q := u.Query()
	q.Set("waitlist", status)
	u.RawQuery = q.Encode()
	u.Fragment = "waitlist"
	return u.String()
}

func handleStats(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := store.Stats(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

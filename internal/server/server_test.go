package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
	"github.com/nothingbetterhealth/nbh-site/internal/db"
	"github.com/nothingbetterhealth/nbh-site/internal/site"
)

func setupServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	st, err := site.New(cat, nil, site.Options{BaseURL: "https://example.test"})
	if err != nil {
		t.Fatalf("site.New: %v", err)
	}
	return New(cfg, st, database, zerolog.Nop())
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := setupServer(t, Config{})

	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := setupServer(t, Config{AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestPages(t *testing.T) {
	srv := setupServer(t, Config{})

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "Virtual Mental Health Care"},
		{"/locations", http.StatusOK, `id="location-grid"`},
		{"/locations/dc", http.StatusOK, "District of Columbia"},
		{"/locations/florida", http.StatusOK, "Join Waitlist"},
		{"/locations/atlantis", http.StatusNotFound, "Location not found"},
		{"/providers", http.StatusOK, "View Profile"},
		{"/providers/ed-stern", http.StatusOK, "Ed"},
		{"/providers/nobody", http.StatusNotFound, "Provider Profile"},
		{"/services", http.StatusOK, "Medication Management"},
		{"/faq", http.StatusOK, "<html"},
		{"/resources", http.StatusOK, "<html"},
		{"/contact", http.StatusOK, "mailto:"},
		{"/contact/", http.StatusOK, "mailto:"},
		{"/no/such/page", http.StatusNotFound, "<html"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, srv, tt.path)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("expected html content type, got %q", ct)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("expected body to contain %q", tt.want)
			}
		})
	}
}

func TestLocationsFilterQuery(t *testing.T) {
	srv := setupServer(t, Config{})

	w := get(t, srv, "/locations?status=coming-soon")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-state-id="florida"`) {
		t.Error("expected florida in coming-soon listing")
	}
	if strings.Contains(body, `data-state-id="dc"`) {
		t.Error("did not expect dc in coming-soon listing")
	}
}

func TestLocationsAPI(t *testing.T) {
	srv := setupServer(t, Config{})

	q := url.Values{"q": {"vir"}, "status": {"all"}}
	w := get(t, srv, "/api/locations?"+q.Encode())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp locationsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 1 || len(resp.IDs) != 1 || resp.IDs[0] != "virginia" {
		t.Errorf("expected only virginia, got %v (count %d)", resp.IDs, resp.Count)
	}
	if !strings.Contains(resp.HTML, `data-state-id="virginia"`) {
		t.Error("expected rendered virginia card")
	}
}

func TestLocationsAPIEmpty(t *testing.T) {
	srv := setupServer(t, Config{})

	w := get(t, srv, "/api/locations?q=zzz")
	var resp locationsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("expected no matches, got %d", resp.Count)
	}
	if resp.IDs == nil {
		t.Error("expected empty ids array, got null")
	}
	if !strings.Contains(resp.HTML, "No locations found matching your search.") {
		t.Error("expected empty-state message")
	}
}

func TestLocationIndex(t *testing.T) {
	srv := setupServer(t, Config{})

	w := get(t, srv, "/locations.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var entries []site.LocationEntry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("expected 5 entries, got %d", len(entries))
	}
}

func TestLocationsSocket(t *testing.T) {
	srv := setupServer(t, Config{})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/locations"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	if err := conn.WriteJSON(filterMessage{Query: "", Status: "active"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got locationsResponse
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Count != 3 {
		t.Errorf("expected 3 active states, got %d (%v)", got.Count, got.IDs)
	}
	if got.Status != "active" {
		t.Errorf("expected status echoed, got %q", got.Status)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	var errResp socketError
	if err := conn.ReadJSON(&errResp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if errResp.Error != "invalid message format" {
		t.Errorf("expected format error, got %q", errResp.Error)
	}
}

func TestDismissAlert(t *testing.T) {
	srv := setupServer(t, Config{})

	req := httptest.NewRequest("POST", "/api/alerts/emergency/dismiss", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == dismissedCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != "emergency" {
		t.Fatalf("expected dismissed cookie for emergency, got %+v", cookie)
	}

	// The home page no longer carries the banner for this visitor.
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if strings.Contains(w.Body.String(), "Call 988 Now") {
		t.Error("expected emergency alert to be hidden after dismissal")
	}

	w = get(t, srv, "/")
	if !strings.Contains(w.Body.String(), "Call 988 Now") {
		t.Error("expected emergency alert for a fresh visitor")
	}
}

func TestDismissAlertMergesCookie(t *testing.T) {
	srv := setupServer(t, Config{})

	req := httptest.NewRequest("POST", "/api/alerts/holiday/dismiss", nil)
	req.AddCookie(&http.Cookie{Name: dismissedCookie, Value: "emergency"})
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == dismissedCookie && c.Value != "emergency,holiday" {
			t.Errorf("expected merged keys, got %q", c.Value)
		}
	}
}

func TestDismissUnknownAlert(t *testing.T) {
	srv := setupServer(t, Config{})

	req := httptest.NewRequest("POST", "/api/alerts/nope/dismiss", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWaitlistMounted(t *testing.T) {
	srv := setupServer(t, Config{})

	body := strings.NewReader(`{"email":"pat@example.com","kind":"state","target":"florida"}`)
	req := httptest.NewRequest("POST", "/api/waitlist", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStaticAndImages(t *testing.T) {
	public := t.TempDir()
	if err := os.MkdirAll(filepath.Join(public, "images"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(public, "images", "logo.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(public, "images", "draft.psd"), []byte("psd"), 0644); err != nil {
		t.Fatal(err)
	}

	srv := setupServer(t, Config{
		PublicDir: public,
		Include:   []string{"**"},
		Exclude:   []string{"**/*.psd"},
	})

	if w := get(t, srv, "/static/style.css"); w.Code != http.StatusOK {
		t.Errorf("style.css: expected 200, got %d", w.Code)
	}
	if w := get(t, srv, "/images/logo.png"); w.Code != http.StatusOK || w.Body.String() != "png" {
		t.Errorf("logo.png: expected 200 with body, got %d", w.Code)
	}
	if w := get(t, srv, "/images/draft.psd"); w.Code != http.StatusNotFound {
		t.Errorf("draft.psd: expected 404, got %d", w.Code)
	}
}

func TestListenAddr(t *testing.T) {
	srv := setupServer(t, Config{Addr: ":9191"})
	if srv.httpServer.Addr != ":9191" {
		t.Errorf("expected addr :9191, got %q", srv.httpServer.Addr)
	}
}

func TestLocationsSocketReadLimit(t *testing.T) {
	srv := setupServer(t, Config{})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/locations"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	big := `{"query":"` + strings.Repeat("a", 2*maxFilterMessage) + `"}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(big)); err != nil {
		t.Fatalf("write: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected the connection to be closed after an oversized message")
	} else if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("expected an abnormal close, got %v", err)
	}
}

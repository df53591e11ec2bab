package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"folio.dev/internal/catalog"
	"folio.dev/internal/config"
	"folio.dev/internal/models"
	"folio.dev/internal/seed"
	"folio.dev/internal/services"
	"folio.dev/internal/storage"
)

func newTestRouter(t *testing.T, corsOrigins ...string) http.Handler {
	t.Helper()

	list, err := seed.Default()
	if err != nil {
		t.Fatal(err)
	}
	store, err := catalog.New(list.Projects)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		CORSOrigins:    corsOrigins,
		SearchDebounce: 0,
		SessionTTL:     time.Hour,
	}
	svc := &services.Services{
		Projects: services.NewProjectService(store),
		Sessions: services.NewSessionManager(store, cfg.SessionTTL),
		Settings: services.NewSettingsService(storage.NewMemoryStore(), services.DefaultSettings),
	}
	return SetupRoutes(cfg, svc)
}

func do(t *testing.T, h http.Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestListProjects(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"all", "", []int{1, 2, 3, 4, 5, 6}},
		{"category", "?category=ai", []int{3}},
		{"search", "?q=react", []int{1, 4}},
		{"unknown category", "?category=embedded", []int{}},
		{"sort by rating", "?sort=rating", []int{4, 1, 6, 3, 2, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/api/projects"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			view := decode[models.View](t, rec)
			if len(view.Cards) != len(tt.want) {
				t.Fatalf("got %d cards, want %v", len(view.Cards), tt.want)
			}
			for i, id := range tt.want {
				if view.Cards[i].ID != id {
					t.Fatalf("card %d = %d, want %v", i, view.Cards[i].ID, tt.want)
				}
			}
			if view.Empty != (len(tt.want) == 0) {
				t.Fatalf("empty = %v", view.Empty)
			}
		})
	}
}

func TestGetProject(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/projects/4", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if d := decode[models.Detail](t, rec); d.ID != 4 {
		t.Fatalf("got detail %d", d.ID)
	}

	if rec := do(t, h, http.MethodGet, "/api/projects/99", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("missing project status = %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/projects/abc", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", rec.Code)
	}
}

func TestFeaturedAndCategories(t *testing.T) {
	h := newTestRouter(t)

	cards := decode[[]models.Card](t, do(t, h, http.MethodGet, "/api/projects/featured", ""))
	if len(cards) != 3 || cards[0].ID != 1 || cards[1].ID != 4 || cards[2].ID != 6 {
		t.Fatalf("unexpected featured cards: %+v", cards)
	}

	cats := decode[[]models.CategoryCount](t, do(t, h, http.MethodGet, "/api/categories", ""))
	if len(cats) == 0 || cats[0].Category != models.CategoryAll || cats[0].Count != 6 {
		t.Fatalf("unexpected categories: %+v", cats)
	}
}

func sessionCount(t *testing.T, h http.Handler) float64 {
	t.Helper()
	body := decode[map[string]any](t, do(t, h, http.MethodGet, "/api/health", ""))
	n, _ := body["sessions"].(float64)
	return n
}

func TestViewSession(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/view/filter", `{"category":"web"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie {
		t.Fatalf("expected a session cookie, got %v", cookies)
	}
	session := cookies[0]
	if v := decode[models.View](t, rec); v.Count != 3 {
		t.Fatalf("filter count = %d", v.Count)
	}

	rec = do(t, h, http.MethodGet, "/api/view", "", session)
	if v := decode[models.View](t, rec); v.Category != "web" {
		t.Fatalf("current view lost the session state: %+v", v)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("existing session should not be reissued")
	}

	rec = do(t, h, http.MethodPost, "/api/view/sort", `{"sort":"price-low"}`, session)
	v := decode[models.View](t, rec)
	if v.Category != "web" || v.Sort != "price-low" {
		t.Fatalf("state not kept across requests: %+v", v)
	}

	rec = do(t, h, http.MethodPost, "/api/view/detail/3", "", session)
	if v := decode[models.View](t, rec); v.Detail == nil || v.Detail.ID != 3 {
		t.Fatalf("expected detail 3, got %+v", v.Detail)
	}

	rec = do(t, h, http.MethodDelete, "/api/view/detail", "", session)
	if v := decode[models.View](t, rec); v.Detail != nil {
		t.Fatal("detail should be closed")
	}

	if rec := do(t, h, http.MethodPost, "/api/view/search", `{`, session); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad body status = %d", rec.Code)
	}
}

func TestViewCurrent_DoesNotStartSessions(t *testing.T) {
	h := newTestRouter(t)

	stale := &http.Cookie{Name: SessionCookie, Value: "expired-session"}
	for i := 0; i < 50; i++ {
		rec := do(t, h, http.MethodGet, "/api/view", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if len(rec.Result().Cookies()) != 0 {
			t.Fatal("a read must not issue a session cookie")
		}
		if v := decode[models.View](t, rec); v.Category != "all" || v.Count != 6 {
			t.Fatalf("expected the default view, got %+v", v)
		}
		do(t, h, http.MethodGet, "/api/view", "", stale)
	}

	if n := sessionCount(t, h); n != 0 {
		t.Fatalf("sessions = %v, want 0", n)
	}
}

func TestViewReset(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/view/filter", `{"category":"ai"}`)
	session := rec.Result().Cookies()[0]
	if n := sessionCount(t, h); n != 1 {
		t.Fatalf("sessions = %v, want 1", n)
	}

	rec = do(t, h, http.MethodDelete, "/api/view", "", session)
	if v := decode[models.View](t, rec); v.Category != "all" || v.Count != 6 {
		t.Fatalf("expected the default view, got %+v", v)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected an expired cookie, got %v", cookies)
	}
	if n := sessionCount(t, h); n != 0 {
		t.Fatalf("sessions = %v, want 0", n)
	}
}

func TestCORS(t *testing.T) {
	const origin = "https://elsewhere.example"

	tests := []struct {
		name            string
		origins         []string
		wantOrigin      string
		wantCredentials string
	}{
		{"disabled by default", nil, "", ""},
		{"wildcard without credentials", []string{"*"}, "*", ""},
		{"explicit origin with credentials", []string{origin}, origin, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t, tt.origins...)

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.Header.Set("Origin", origin)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("allow-origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != tt.wantCredentials {
				t.Fatalf("allow-credentials = %q, want %q", got, tt.wantCredentials)
			}
		})
	}
}

func TestSettings(t *testing.T) {
	h := newTestRouter(t)

	type response struct {
		Key     string          `json:"key"`
		Value   json.RawMessage `json:"value"`
		Saved   bool            `json:"saved"`
		Removed bool            `json:"removed"`
	}

	got := decode[response](t, do(t, h, http.MethodGet, "/api/settings/theme", ""))
	if string(got.Value) != `"dark"` {
		t.Fatalf("default theme = %s", got.Value)
	}

	got = decode[response](t, do(t, h, http.MethodPut, "/api/settings/theme", `"light"`))
	if !got.Saved {
		t.Fatal("expected save to succeed")
	}
	got = decode[response](t, do(t, h, http.MethodGet, "/api/settings/theme", ""))
	if string(got.Value) != `"light"` {
		t.Fatalf("theme = %s", got.Value)
	}

	got = decode[response](t, do(t, h, http.MethodDelete, "/api/settings/theme", ""))
	if !got.Removed {
		t.Fatal("expected remove to succeed")
	}

	got = decode[response](t, do(t, h, http.MethodGet, "/api/settings/missing", ""))
	if string(got.Value) != "null" {
		t.Fatalf("missing setting = %s", got.Value)
	}

	if rec := do(t, h, http.MethodPut, "/api/settings/theme", "not json"); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid value status = %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request id header")
	}

	body := decode[map[string]any](t, rec)
	if body["status"] != "ok" || body["projects"] != float64(6) {
		t.Fatalf("unexpected health body: %v", body)
	}
}

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDHeaderSet(t *testing.T) {
	h := newTestServer(&fakePlatform{}, &fakeFetcher{})

	w := do(t, h, "/")
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header missing")
	}
}

func TestUnknownRouteNotFound(t *testing.T) {
	h := newTestServer(&fakePlatform{}, &fakeFetcher{})

	w := do(t, h, "/api/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(&fakePlatform{}, &fakeFetcher{})

	req := httptest.NewRequest(http.MethodPost, "/api/vault-accounts", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestRecoverPanics(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	recoverPanics(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestFallbackServerAnswersEveryRoute(t *testing.T) {
	srv := NewFallbackServer("0", errors.New("API_KEY is required"))

	for _, path := range []string{"/", "/api/vault-accounts", "/api/transactions", "/anything"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s: status = %d, want 500", path, w.Code)
		}
		var body map[string]any
		decode(t, w, &body)
		if body["error"] == nil {
			t.Errorf("%s: body = %v, want explanatory error", path, body)
		}
	}
}

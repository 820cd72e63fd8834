package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"convenios/internal/platform/config"
	phttp "convenios/internal/platform/net/http"
)

func TestNewServer_DefaultsAndMux(t *testing.T) {
	srv := phttp.NewServer(config.New()) // no env, should default to :4000
	if srv.Addr() == "" {
		t.Fatalf("expected non-empty addr")
	}
	r := srv.Router()
	if r == nil || r.Mux() == nil {
		t.Fatalf("router or mux is nil")
	}

	// simple route
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("bad response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_RouteAndGroup(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()

	r.Route("/api/v1", func(sub phttp.Router) {
		sub.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "v1 pong")
		})
		sub.Group(func(g phttp.Router) {
			g.Get("/grouped", func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, "grouped")
			})
		})
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "v1 pong" {
		t.Fatalf("route: %d %q", rec.Code, rec.Body.String())
	}

	rec2 := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec2, httptest.NewRequest("GET", "/api/v1/grouped", nil))
	if rec2.Code != http.StatusOK || rec2.Body.String() != "grouped" {
		t.Fatalf("group: %d %q", rec2.Code, rec2.Body.String())
	}
}

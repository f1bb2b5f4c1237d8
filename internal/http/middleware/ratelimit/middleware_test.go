package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	middleware := Middleware(Options{
		Interval:  time.Minute,
		MaxBurst:  3,
		CacheSize: 16,
		CacheTTL:  time.Minute,
	})

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		res := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"

		handler.ServeHTTP(res, req)

		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("request %d status: expected %d, got %d", i, e, g)
		}
	}

	res := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"

	handler.ServeHTTP(res, req)

	if e, g := http.StatusTooManyRequests, res.Code; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}

	if res.Header().Get("Retry-After") == "" {
		t.Errorf("Retry-After: expected header to be set")
	}

	// Another client has its own bucket
	res = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.2:1234"

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}
}

func TestMiddlewareTrustHeaders(t *testing.T) {
	middleware := Middleware(Options{
		TrustHeaders: true,
		Interval:     time.Minute,
		MaxBurst:     1,
		CacheSize:    16,
		CacheTTL:     time.Minute,
	})

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(forwardedFor string) int {
		res := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", forwardedFor)

		handler.ServeHTTP(res, req)

		return res.Code
	}

	if e, g := http.StatusOK, send("198.51.100.1"); e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}

	if e, g := http.StatusTooManyRequests, send("198.51.100.1"); e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}

	// Clients behind different forwarded addresses are distinct
	if e, g := http.StatusOK, send("198.51.100.2"); e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}
}

package middleware

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yatube/internal/cache"
	"yatube/internal/wlog"
)

func TestPageCacheServesStoredPage(t *testing.T) {
	hits := 0
	handler := PageCache(cache.NewMemory(), 20*time.Second, wlog.Discard(), func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprintf(w, "render %d", hits)
	})

	first := httptest.NewRecorder()
	handler(first, httptest.NewRequest(http.MethodGet, "/?page=2", nil))
	second := httptest.NewRecorder()
	handler(second, httptest.NewRequest(http.MethodGet, "/?page=2", nil))

	if hits != 1 {
		t.Fatalf("Expected a single render, got %d", hits)
	}
	if got := second.Body.String(); got != "render 1" {
		t.Errorf("Expected the cached body, got %q", got)
	}
}

func TestPageCacheKeysOnFullURL(t *testing.T) {
	hits := 0
	handler := PageCache(cache.NewMemory(), 20*time.Second, wlog.Discard(), func(w http.ResponseWriter, r *http.Request) {
		hits++
		io.WriteString(w, r.URL.RawQuery)
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?page=1", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?page=2", nil))

	if hits != 2 {
		t.Errorf("Different query strings must render independently, got %d renders", hits)
	}
}

func TestPageCacheSkipsNonGET(t *testing.T) {
	hits := 0
	handler := PageCache(cache.NewMemory(), 20*time.Second, wlog.Discard(), func(w http.ResponseWriter, r *http.Request) {
		hits++
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	if hits != 2 {
		t.Errorf("POST requests must never be cached, got %d invocations", hits)
	}
}

func TestPageCacheSkipsErrorResponses(t *testing.T) {
	hits := 0
	handler := PageCache(cache.NewMemory(), 20*time.Second, wlog.Discard(), func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if hits != 2 {
		t.Errorf("Error responses must not be stored, got %d invocations", hits)
	}
}

func TestPageCacheExpiry(t *testing.T) {
	hits := 0
	handler := PageCache(cache.NewMemory(), 30*time.Millisecond, wlog.Discard(), func(w http.ResponseWriter, r *http.Request) {
		hits++
		io.WriteString(w, "ok")
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	time.Sleep(50 * time.Millisecond)
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if hits != 2 {
		t.Errorf("Expected a fresh render after expiry, got %d invocations", hits)
	}
}

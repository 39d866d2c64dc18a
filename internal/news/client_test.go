package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestClientURL(t *testing.T) {
	c := NewClient("https://newsapi.example/v2/", "k", time.Second)

	search, err := url.Parse(c.URL(NewQuery("", "go & rust", 3)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if search.Path != "/v2/everything" {
		t.Errorf("search path = %q", search.Path)
	}
	q := search.Query()
	if q.Get("q") != "go & rust" || q.Get("sortBy") != "publishedAt" || q.Get("page") != "3" || q.Get("pageSize") != "12" {
		t.Errorf("search query = %v", q)
	}
	if q.Has("apiKey") {
		t.Error("API key must not appear in the URL")
	}

	headlines, err := url.Parse(c.URL(NewQuery("tech", "", 1)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if headlines.Path != "/v2/top-headlines" {
		t.Errorf("headlines path = %q", headlines.Path)
	}
	if hq := headlines.Query(); hq.Get("category") != "tech" || hq.Get("pageSize") != "12" || hq.Has("q") {
		t.Errorf("headlines query = %v", hq)
	}
}

func TestFetch_Success(t *testing.T) {
	var gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","totalResults":1,"articles":[{"title":"t"}]}`))
	}))
	defer srv.Close()

	body, err := NewClient(srv.URL, "secret-key", time.Second).Fetch(context.Background(), NewQuery("", "", 1))
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if string(body) != `{"status":"ok","totalResults":1,"articles":[{"title":"t"}]}` {
		t.Errorf("Fetch() body = %s", body)
	}
	if gotKey != "secret-key" {
		t.Errorf("X-Api-Key = %q", gotKey)
	}
	if gotPath != "/top-headlines" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid."}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad", time.Second).Fetch(context.Background(), NewQuery("", "x", 1))

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("Fetch() error = %v, want *UpstreamError", err)
	}
	if upErr.Message != "Your API key is invalid." || upErr.Code != "apiKeyInvalid" {
		t.Errorf("UpstreamError = %+v", upErr)
	}
}

func TestFetch_NetworkErrors(t *testing.T) {
	closed := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer garbage.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{}`))
	}))
	defer failing.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"connection refused", closedURL},
		{"timeout", slow.URL},
		{"undecodable body", garbage.URL},
		{"server failure", failing.URL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.url, "k", 100*time.Millisecond).Fetch(context.Background(), NewQuery("", "", 1))
			var netErr *NetworkError
			if !errors.As(err, &netErr) {
				t.Fatalf("Fetch() error = %v, want *NetworkError", err)
			}
		})
	}
}

func TestKeyConfigured(t *testing.T) {
	if NewClient("http://x", "", time.Second).KeyConfigured() {
		t.Error("KeyConfigured() = true without key")
	}
	if !NewClient("http://x", "k", time.Second).KeyConfigured() {
		t.Error("KeyConfigured() = false with key")
	}
}

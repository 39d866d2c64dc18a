package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/worldradio/newsroom-go/internal/crypto"
)

func TestJWTAuth(t *testing.T) {
	issuedAt := time.Now().Add(-8 * 24 * time.Hour)
	tokens := crypto.NewTokenManager("test-secret", 7*24*time.Hour)

	valid, err := tokens.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	expired, err := tokens.WithClock(func() time.Time { return issuedAt }).Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	foreign, err := crypto.NewTokenManager("other-secret", time.Hour).Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"no header", "", http.StatusUnauthorized, "no token provided"},
		{"no scheme", valid, http.StatusUnauthorized, "invalid token format"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "invalid token format"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "invalid token format"},
		{"expired", "Bearer " + expired, http.StatusForbidden, "token expired"},
		{"foreign secret", "Bearer " + foreign, http.StatusForbidden, "invalid token"},
		{"garbage", "Bearer abc.def.ghi", http.StatusForbidden, "invalid token"},
		{"valid", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var got Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, _ = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			JWTAuth(tokens)(next).ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantError == "" {
				if !called {
					t.Fatal("next handler not called")
				}
				if got.UserID != 42 || got.Username != "alice" {
					t.Errorf("identity = %+v", got)
				}
				return
			}

			if called {
				t.Error("next handler must not run when authentication fails")
			}
			var body map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != tt.wantError {
				t.Errorf("error = %q, want %q", body["error"], tt.wantError)
			}
		})
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("UserIDFromContext() ok = true on bare context")
	}
}

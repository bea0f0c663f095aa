// AngelaMos | 2026
// middleware_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/config"
	"github.com/carterperez-dev/kixi-backend/internal/core"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("propagated id = %q, header = %q", seen, rec.Header().Get(RequestIDHeader))
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "bad id with spaces")
	h.ServeHTTP(httptest.NewRecorder(), r)
	if seen == "bad id with spaces" || len(seen) != 36 {
		t.Errorf("minted id = %q, want a uuid", seen)
	}
}

type stubVerifier struct {
	principal *Principal
	err       error
}

func (s stubVerifier) Authenticate(context.Context, string) (*Principal, error) {
	return s.principal, s.err
}

func TestAuthenticator(t *testing.T) {
	admin := &Principal{AccountID: 7, Username: "ada", Roles: []string{AdminRole}}

	tests := []struct {
		name     string
		header   string
		verifier stubVerifier
		chain    func(http.Handler) http.Handler
		want     int
	}{
		{"missing token", "", stubVerifier{principal: admin}, nil, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", stubVerifier{principal: admin}, nil, http.StatusUnauthorized},
		{"revoked", "Bearer t", stubVerifier{err: core.ErrTokenRevoked}, nil, http.StatusUnauthorized},
		{"forbidden", "Bearer t", stubVerifier{err: core.ForbiddenError("account is disabled")}, nil, http.StatusForbidden},
		{"admin passes", "Bearer t", stubVerifier{principal: admin}, RequireAdmin, http.StatusOK},
		{
			"non admin blocked", "Bearer t",
			stubVerifier{principal: &Principal{AccountID: 8, Roles: []string{"STUDENT"}}},
			RequireAdmin, http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inner http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if GetAccountID(r.Context()) == 0 {
					t.Error("principal missing from context")
				}
				w.WriteHeader(http.StatusOK)
			})
			if tt.chain != nil {
				inner = tt.chain(inner)
			}
			h := Authenticator(tt.verifier)(inner)

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireRoleWithoutPrincipal(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireRole("TEACHER")(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLocalRateLimit(t *testing.T) {
	rl := NewRateLimiter(nil, RateLimitConfig{
		Limit: PerWindow(2, 2, time.Minute),
	})
	h := rl.Handler(ok)

	codes := make([]int, 0, 3)
	for range 3 {
		r := httptest.NewRequest(http.MethodGet, "/courses", nil)
		r.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			if rec.Header().Get("Retry-After") == "" {
				t.Error("429 without Retry-After")
			}
			if !strings.Contains(rec.Header().Get("Content-Type"), "problem+json") {
				t.Error("429 is not a problem document")
			}
		}
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v, want %v", codes, want)
		}
	}

	r := httptest.NewRequest(http.MethodGet, "/courses", nil)
	r.RemoteAddr = "10.0.0.2:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", rec.Code)
	}
}

func TestRateLimitKeys(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:1234"
	if got := KeyByIP(r); got != "ratelimit:ip:192.0.2.1" {
		t.Errorf("KeyByIP() = %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.5, 198.51.100.7")
	if got := KeyByIP(r); got != "ratelimit:ip:198.51.100.7" {
		t.Errorf("KeyByIP(xff) = %q", got)
	}

	r = r.WithContext(WithPrincipal(r.Context(), &Principal{AccountID: 42}))
	if got := KeyByAccount(r); got != "ratelimit:account:42" {
		t.Errorf("KeyByAccount() = %q", got)
	}
}

func TestCORS(t *testing.T) {
	h := CORS(config.CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	})(ok)

	r := httptest.NewRequest(http.MethodOptions, "/api/v1/courses", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	r.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") != "GET, POST" ||
		rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Errorf("preflight headers = %v", rec.Header())
	}

	r = httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	r.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("foreign origin was allowed")
	}
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(true)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, h := range []string{"X-Content-Type-Options", "X-Frame-Options", "Strict-Transport-Security"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("missing %s", h)
		}
	}
}

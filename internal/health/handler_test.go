// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, h *Handler, path string) (*httptest.ResponseRecorder, ReadinessResponse) {
	t.Helper()
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body ReadinessResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec, body
}

func TestReadiness(t *testing.T) {
	h := NewHandler(
		Dependency{Name: "database", Checker: pinger{}},
		Dependency{Name: "redis"},
	)

	rec, body := get(t, h, "/readyz")
	if rec.Code != http.StatusOK || body.Status != "ok" {
		t.Fatalf("readyz = %d %+v", rec.Code, body)
	}
	if len(body.Checks) != 2 || body.Checks[1].Message != "disabled" || !body.Checks[1].Healthy {
		t.Errorf("checks = %+v", body.Checks)
	}
}

func TestReadinessDegraded(t *testing.T) {
	h := NewHandler(Dependency{Name: "database", Checker: pinger{err: errors.New("refused")}})

	rec, body := get(t, h, "/readyz")
	if rec.Code != http.StatusServiceUnavailable || body.Status != "degraded" {
		t.Errorf("readyz = %d %+v", rec.Code, body)
	}
	if body.Checks[0].Message != "ping failed" {
		t.Errorf("message = %q", body.Checks[0].Message)
	}
}

func TestShutdownFailsChecks(t *testing.T) {
	h := NewHandler()

	if rec, _ := get(t, h, "/healthz"); rec.Code != http.StatusOK {
		t.Fatalf("healthz = %d", rec.Code)
	}

	h.SetReady(false)
	if rec, body := get(t, h, "/readyz"); rec.Code != http.StatusServiceUnavailable || body.Status != "not_ready" {
		t.Errorf("readyz not ready = %d %+v", rec.Code, body)
	}

	h.SetShutdown(true)
	for _, path := range []string{"/livez", "/readyz"} {
		if rec, body := get(t, h, path); rec.Code != http.StatusServiceUnavailable || body.Status != "shutting_down" {
			t.Errorf("%s = %d %+v", path, rec.Code, body)
		}
	}
}

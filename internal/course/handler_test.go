// AngelaMos | 2026
// handler_test.go

package course

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/kixi-backend/internal/core"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(newTestService(t)).RegisterRoutes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlerLifecycle(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/courses", `{"code":"cs101","name":"Intro to CS"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body)
	}

	var created CourseResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Code != "CS101" {
		t.Errorf("code = %q", created.Code)
	}

	steps := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/courses/1", http.StatusOK},
		{http.MethodDelete, "/courses/1/purge", http.StatusConflict},
		{http.MethodDelete, "/courses/1", http.StatusNoContent},
		{http.MethodDelete, "/courses/1", http.StatusNotFound},
		{http.MethodGet, "/courses/1", http.StatusNotFound},
		{http.MethodPost, "/courses/1/restore", http.StatusOK},
		{http.MethodPost, "/courses/1/restore", http.StatusConflict},
		{http.MethodGet, "/courses/0", http.StatusBadRequest},
		{http.MethodGet, "/courses/abc", http.StatusBadRequest},
	}
	for _, s := range steps {
		if rec := do(t, h, s.method, s.path, ""); rec.Code != s.want {
			t.Errorf("%s %s = %d, want %d (%s)", s.method, s.path, rec.Code, s.want, rec.Body)
		}
	}
}

func TestHandlerTrashListing(t *testing.T) {
	h := newTestRouter(t)

	do(t, h, http.MethodPost, "/courses", `{"code":"A1","name":"Alpha"}`)
	do(t, h, http.MethodPost, "/courses", `{"code":"B1","name":"Bravo"}`)
	do(t, h, http.MethodDelete, "/courses/2", "")

	var active, trashed []CourseResponse
	if err := json.NewDecoder(do(t, h, http.MethodGet, "/courses", "").Body).Decode(&active); err != nil {
		t.Fatalf("decode active: %v", err)
	}
	if err := json.NewDecoder(do(t, h, http.MethodGet, "/courses/trash", "").Body).Decode(&trashed); err != nil {
		t.Fatalf("decode trash: %v", err)
	}

	if len(active) != 1 || active[0].Code != "A1" {
		t.Errorf("active = %+v", active)
	}
	if len(trashed) != 1 || trashed[0].Code != "B1" || trashed[0].DeletedAt == nil {
		t.Errorf("trashed = %+v", trashed)
	}
}

func TestHandlerProblemDetails(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/courses", `{"code":"x","name":"ab"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}

	var p core.Problem
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Status != http.StatusBadRequest || p.Instance != "/courses" {
		t.Errorf("problem = %+v", p)
	}
	if p.Errors["code"] != "min" || p.Errors["name"] != "min" {
		t.Errorf("field errors = %v", p.Errors)
	}

	rec = do(t, h, http.MethodPost, "/courses", `{"code":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", rec.Code)
	}
}

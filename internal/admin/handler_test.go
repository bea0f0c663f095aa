// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type fixedCounter struct {
	active, trashed int
	err             error
}

func (c fixedCounter) Count(_ context.Context, state lifecycle.State) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	if state == lifecycle.Trashed {
		return c.trashed, nil
	}
	return c.active, nil
}

func passthrough(next http.Handler) http.Handler { return next }

func serve(t *testing.T, h *Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	h.RegisterRoutes(r, passthrough, passthrough)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSystemStats(t *testing.T) {
	h := NewHandler(HandlerConfig{
		DBStats: func() sql.DBStats { return sql.DBStats{OpenConnections: 3, InUse: 1} },
		DBPing:  func(context.Context) error { return nil },
		RedisPing: func(context.Context) error {
			return errors.New("connection refused")
		},
		Driver: "sqlite",
		Entities: []Entity{
			{Name: "course", Counter: fixedCounter{active: 4, trashed: 1}},
			{Name: "role", Counter: fixedCounter{active: 2}},
		},
	})

	rec := serve(t, h, "/admin/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got SystemStatsResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !got.Database.Healthy || got.Database.Driver != "sqlite" {
		t.Errorf("database = %+v", got.Database)
	}
	if got.Database.Stats == nil || got.Database.Stats.OpenConnections != 3 {
		t.Errorf("database stats = %+v", got.Database.Stats)
	}
	if got.Redis.Healthy {
		t.Error("redis should be reported unhealthy")
	}
	if got.Redis.Stats != nil {
		t.Error("redis stats should be omitted without a client")
	}
	if len(got.Entities) != 2 {
		t.Fatalf("entities = %+v", got.Entities)
	}
	if got.Entities[0] != (EntityStats{Name: "course", Active: 4, Trashed: 1}) {
		t.Errorf("course = %+v", got.Entities[0])
	}
	if got.Runtime.GoVersion == "" || got.Runtime.NumCPU == 0 {
		t.Errorf("runtime = %+v", got.Runtime)
	}
}

func TestMemoryDriverHidesPoolStats(t *testing.T) {
	h := NewHandler(HandlerConfig{
		DBStats: func() sql.DBStats { return sql.DBStats{} },
		Driver:  "memory",
	})

	rec := serve(t, h, "/admin/stats/db")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "null\n" {
		t.Errorf("body = %q, want null", body)
	}
}

func TestEntityStatsError(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Entities: []Entity{
			{Name: "course", Counter: fixedCounter{err: core.UnexpectedError(errors.New("boom"))}},
		},
	})

	rec := serve(t, h, "/admin/stats/entities")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

// AngelaMos | 2026
// service_test.go

package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/account"
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/schoolyear"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type fixture struct {
	svc  *Service
	acct *account.Account
	year *schoolyear.SchoolYear
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	hasher, err := core.NewPasswordHasher(core.Argon2Params{
		Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16,
	})
	if err != nil {
		t.Fatalf("NewPasswordHasher() error = %v", err)
	}

	accounts := account.NewService(
		store.Memory[*account.Account, int64](account.Spec), hasher, lifecycle.Options{})
	years := schoolyear.NewService(
		store.Memory[*schoolyear.SchoolYear, int64](schoolyear.Spec), lifecycle.Options{})

	f := &fixture{
		svc: NewService(store.Memory[*Simulation, int64](Spec), accounts, years, lifecycle.Options{}),
	}

	f.acct, err = accounts.Create(ctx, account.AccountRequest{
		Username: "ana", Email: "ana@example.com", Password: "password1",
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	f.year, err = years.Create(ctx, schoolyear.SchoolYearRequest{StartYear: 2025, EndYear: 2026})
	if err != nil {
		t.Fatalf("create school year: %v", err)
	}
	return f
}

func (f *fixture) start(t *testing.T, statementID int64) *Simulation {
	t.Helper()
	sim, err := f.svc.Create(context.Background(), CreateSimulationRequest{
		AccountID:    f.acct.ID,
		StatementID:  statementID,
		SchoolYearID: f.year.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return sim
}

func ptr[T any](v T) *T { return &v }

func TestFinishScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	sim := f.start(t, 3)
	if sim.Status != StatusInProgress || sim.StartedAt.IsZero() {
		t.Fatalf("new simulation = %+v", sim)
	}

	finishedAt := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	done, err := f.svc.UpdateStatus(ctx, sim.ID, UpdateStatusRequest{
		Status:           StatusFinished,
		FinishedAt:       &finishedAt,
		TimeSpentSeconds: ptr(600),
		FinalScore:       ptr(8.5),
	})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	if done.Status != StatusFinished {
		t.Errorf("Status = %s", done.Status)
	}
	if done.FinishedAt == nil || !done.FinishedAt.Equal(finishedAt) {
		t.Errorf("FinishedAt = %v", done.FinishedAt)
	}
	if done.TimeSpentSeconds == nil || *done.TimeSpentSeconds != 600 {
		t.Errorf("TimeSpentSeconds = %v", done.TimeSpentSeconds)
	}
	if done.FinalScore == nil || *done.FinalScore != 8.5 {
		t.Errorf("FinalScore = %v", done.FinalScore)
	}

	_, err = f.svc.UpdateStatus(ctx, sim.ID, UpdateStatusRequest{Status: StatusCancelled})
	if !errors.Is(err, core.ErrInvalidState) {
		t.Fatalf("second UpdateStatus() error = %v, want invalid state", err)
	}
}

func TestUpdateStatusRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sim := f.start(t, 1)
	now := time.Now()

	tests := []struct {
		name    string
		id      int64
		req     UpdateStatusRequest
		wantErr error
	}{
		{"missing", 999, UpdateStatusRequest{Status: StatusCancelled}, core.ErrNotFound},
		{"back to in progress", sim.ID, UpdateStatusRequest{Status: StatusInProgress}, core.ErrInvalidInput},
		{"unknown status", sim.ID, UpdateStatusRequest{Status: "PAUSED"}, core.ErrInvalidInput},
		{"finish without time", sim.ID, UpdateStatusRequest{Status: StatusFinished, TimeSpentSeconds: ptr(5)}, core.ErrInvalidInput},
		{"finish without spent", sim.ID, UpdateStatusRequest{Status: StatusFinished, FinishedAt: &now}, core.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.UpdateStatus(ctx, tt.id, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UpdateStatus() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	got, err := f.svc.Get(ctx, sim.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != StatusInProgress || got.FinishedAt != nil {
		t.Errorf("rejected updates changed the simulation: %+v", got)
	}
}

func TestCancelLeavesFinishFieldsEmpty(t *testing.T) {
	f := newFixture(t)
	sim := f.start(t, 1)

	got, err := f.svc.UpdateStatus(context.Background(), sim.ID, UpdateStatusRequest{Status: "cancelled"})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if got.Status != StatusCancelled || got.FinishedAt != nil || got.TimeSpentSeconds != nil {
		t.Errorf("cancelled simulation = %+v", got)
	}
}

func TestOneInProgressPerStatement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sim := f.start(t, 7)

	_, err := f.svc.Create(ctx, CreateSimulationRequest{
		AccountID: f.acct.ID, StatementID: 7, SchoolYearID: f.year.ID,
	})
	if !errors.Is(err, core.ErrConflict) {
		t.Fatalf("second in-progress Create() error = %v, want conflict", err)
	}

	if _, err := f.svc.UpdateStatus(ctx, sim.ID, UpdateStatusRequest{Status: StatusCancelled}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	f.start(t, 7)
}

func TestLifecycleKeepsStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sim := f.start(t, 2)

	if _, err := f.svc.UpdateStatus(ctx, sim.ID, UpdateStatusRequest{Status: StatusCancelled}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if err := f.svc.Delete(ctx, sim.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	restored, err := f.svc.Restore(ctx, sim.ID)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.Status != StatusCancelled {
		t.Errorf("Status after restore = %s", restored.Status)
	}
}

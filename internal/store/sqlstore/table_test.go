// AngelaMos | 2026
// table_test.go

package sqlstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/account"
	"github.com/carterperez-dev/kixi-backend/internal/accountrole"
	"github.com/carterperez-dev/kixi-backend/internal/config"
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/course"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/migrations"
	"github.com/carterperez-dev/kixi-backend/internal/role"
	"github.com/carterperez-dev/kixi-backend/internal/schoolyear"
	"github.com/carterperez-dev/kixi-backend/internal/simulation"
	"github.com/carterperez-dev/kixi-backend/internal/store/sqlstore"
)

func openSQLite(t *testing.T) *core.Database {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "kixi.db"),
	}

	version, err := migrations.Up(cfg)
	if err != nil {
		t.Fatalf("migrations.Up() error = %v", err)
	}
	if version == 0 {
		t.Fatal("no migration applied")
	}

	db, err := core.NewDatabase(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newAccounts(t *testing.T, db *core.Database) *account.Service {
	t.Helper()

	hasher, err := core.NewPasswordHasher(core.Argon2Params{
		Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16,
	})
	if err != nil {
		t.Fatalf("NewPasswordHasher() error = %v", err)
	}
	return account.NewService(account.NewStore(db), hasher, lifecycle.Options{})
}

func TestTableRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	st := sqlstore.NewTable[*course.Course, int64](db.DB, sqlstore.Spec{
		Table:     course.Spec.Table,
		Key:       course.Spec.Key,
		Generated: true,
		Columns:   course.Spec.Columns,
	})

	c := &course.Course{Code: "CS101", Name: "Intro"}
	if err := st.Insert(ctx, c); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if c.ID == 0 {
		t.Fatal("Insert() did not read back the generated id")
	}
	if c.DeletedAt != nil {
		t.Fatalf("Insert() set DeletedAt = %v", c.DeletedAt)
	}

	got, err := st.Get(ctx, c.ID, lifecycle.Active)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Code != "CS101" || got.Name != "Intro" {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := st.Get(ctx, c.ID, lifecycle.Trashed); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Get(trashed) error = %v, want not found", err)
	}

	got.Name = "Intro to CS"
	if err := st.Update(ctx, got); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	rows, err := st.List(ctx, lifecycle.Query{
		State: lifecycle.Active,
		Where: map[string]any{"code": "CS101"},
	})
	if err != nil || len(rows) != 1 || rows[0].Name != "Intro to CS" {
		t.Fatalf("List() = %+v, %v", rows, err)
	}

	if err := st.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := st.Delete(ctx, c.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want not found", err)
	}
	if err := st.Update(ctx, got); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want not found", err)
	}
}

func TestPartialUniqueIndex(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	svc := course.NewService(course.NewStore(db), lifecycle.Options{})

	first, err := svc.Create(ctx, course.CourseRequest{Code: "CS101", Name: "Intro"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	st := course.NewStore(db)
	dup := &course.Course{Code: "CS101", Name: "Bypass"}
	if err := st.Insert(ctx, dup); !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("raw duplicate Insert() error = %v, want duplicate key", err)
	}

	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Create(ctx, course.CourseRequest{Code: "CS101", Name: "Again"}); err != nil {
		t.Fatalf("Create() after trashing error = %v", err)
	}
	if _, err := svc.Restore(ctx, first.ID); !errors.Is(err, core.ErrConflict) {
		t.Errorf("Restore() error = %v, want conflict", err)
	}
}

func TestPurgeReferencedRowConflicts(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	accounts := newAccounts(t, db)
	roles := role.NewService(role.NewStore(db), lifecycle.Options{})
	assignments := accountrole.NewService(
		accountrole.NewStore(db), accounts, roles, lifecycle.Options{},
	)

	acct, err := accounts.Create(ctx, account.AccountRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("account Create() error = %v", err)
	}
	r, err := roles.Create(ctx, role.RoleRequest{Name: "ADMIN"})
	if err != nil {
		t.Fatalf("role Create() error = %v", err)
	}
	if _, _, err := assignments.Assign(ctx, acct.ID, r.ID); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}

	if err := roles.Delete(ctx, r.ID); err != nil {
		t.Fatalf("role Delete() error = %v", err)
	}

	err = roles.Purge(ctx, r.ID)
	if !errors.Is(err, core.ErrConflict) || !errors.Is(err, core.ErrForeignKey) {
		t.Fatalf("Purge(referenced) error = %v, want conflict from foreign key", err)
	}

	if _, err := roles.Restore(ctx, r.ID); err != nil {
		t.Errorf("Restore() after failed purge error = %v", err)
	}
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	svc := course.NewService(course.NewStore(db), lifecycle.Options{})

	c, err := svc.Create(ctx, course.CourseRequest{Code: "cs101", Name: "Intro"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if c.DeletedAt != nil {
		t.Fatalf("Create() DeletedAt = %v, want nil", c.DeletedAt)
	}

	got, err := svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Code != "CS101" || got.DeletedAt != nil {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := svc.Create(ctx, course.CourseRequest{Code: "CS101", Name: "Dup"}); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("duplicate Create() error = %v, want conflict", err)
	}
	if _, err := svc.Restore(ctx, c.ID); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Restore(active) error = %v, want invalid state", err)
	}
	if err := svc.Purge(ctx, c.ID); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Purge(active) error = %v, want invalid state", err)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Get(trashed) error = %v, want not found", err)
	}
	trashed, err := svc.ListTrashed(ctx)
	if err != nil || len(trashed) != 1 || trashed[0].ID != c.ID || trashed[0].DeletedAt == nil {
		t.Fatalf("ListTrashed() = %+v, %v", trashed, err)
	}

	restored, err := svc.Restore(ctx, c.ID)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.DeletedAt != nil {
		t.Errorf("Restore() DeletedAt = %v, want nil", restored.DeletedAt)
	}
	if active, err := svc.List(ctx); err != nil || len(active) != 1 {
		t.Fatalf("List() = %+v, %v", active, err)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	again, err := svc.Create(ctx, course.CourseRequest{Code: "CS101", Name: "Again"})
	if err != nil {
		t.Fatalf("Create() after trashing error = %v", err)
	}
	if again.ID == c.ID {
		t.Errorf("Create() reused id %d", c.ID)
	}

	if err := svc.Purge(ctx, c.ID); err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if _, err := svc.Restore(ctx, c.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Restore(purged) error = %v, want not found", err)
	}

	active, err := svc.Count(ctx, lifecycle.Active)
	if err != nil || active != 1 {
		t.Errorf("Count(active) = %d, %v, want 1", active, err)
	}
	trashedCount, err := svc.Count(ctx, lifecycle.Trashed)
	if err != nil || trashedCount != 0 {
		t.Errorf("Count(trashed) = %d, %v, want 0", trashedCount, err)
	}
}

func TestNullableColumnsStayNull(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	accounts := newAccounts(t, db)
	years := schoolyear.NewService(schoolyear.NewStore(db), lifecycle.Options{})
	sims := simulation.NewService(simulation.NewStore(db), accounts, years, lifecycle.Options{})

	acct, err := accounts.Create(ctx, account.AccountRequest{
		Username: "grace",
		Email:    "grace@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("account Create() error = %v", err)
	}
	year, err := years.Create(ctx, schoolyear.SchoolYearRequest{StartYear: 2025, EndYear: 2026})
	if err != nil {
		t.Fatalf("school year Create() error = %v", err)
	}

	sim, err := sims.Create(ctx, simulation.CreateSimulationRequest{
		AccountID:    acct.ID,
		StatementID:  7,
		SchoolYearID: year.ID,
	})
	if err != nil {
		t.Fatalf("simulation Create() error = %v", err)
	}

	got, err := sims.Get(ctx, sim.ID)
	if err != nil {
		t.Fatalf("simulation Get() error = %v", err)
	}
	if got.Status != simulation.StatusInProgress {
		t.Errorf("Status = %s, want %s", got.Status, simulation.StatusInProgress)
	}
	if got.FinishedAt != nil || got.TimeSpentSeconds != nil || got.FinalScore != nil {
		t.Errorf("in-progress row has finish fields: finished=%v spent=%v score=%v",
			got.FinishedAt, got.TimeSpentSeconds, got.FinalScore)
	}
	if got.DeletedAt != nil {
		t.Errorf("DeletedAt = %v, want nil", got.DeletedAt)
	}
	if acct.LastLogin != nil {
		t.Errorf("account LastLogin = %v, want nil", acct.LastLogin)
	}

	spent := 90
	finished, err := sims.UpdateStatus(ctx, sim.ID, simulation.UpdateStatusRequest{
		Status:           simulation.StatusFinished,
		FinishedAt:       ptr(time.Now()),
		TimeSpentSeconds: &spent,
	})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if finished.FinalScore != nil {
		t.Errorf("FinalScore = %v, want nil when not reported", *finished.FinalScore)
	}

	got, err = sims.Get(ctx, sim.ID)
	if err != nil {
		t.Fatalf("simulation Get() after finish error = %v", err)
	}
	if got.FinishedAt == nil || got.TimeSpentSeconds == nil || *got.TimeSpentSeconds != spent {
		t.Errorf("finished row = %+v", got)
	}
	if got.FinalScore != nil {
		t.Errorf("stored FinalScore = %v, want NULL", *got.FinalScore)
	}
}

func ptr[T any](v T) *T {
	return &v
}

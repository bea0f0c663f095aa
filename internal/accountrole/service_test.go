// AngelaMos | 2026
// service_test.go

package accountrole

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/carterperez-dev/kixi-backend/internal/account"
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/role"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type fixture struct {
	svc      *Service
	accounts *account.Service
	roles    *role.Service
	acct     *account.Account
	admin    *role.Role
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

	f := &fixture{
		accounts: account.NewService(
			store.Memory[*account.Account, int64](account.Spec), hasher, lifecycle.Options{}),
		roles: role.NewService(store.Memory[*role.Role, int64](role.Spec), lifecycle.Options{}),
	}
	f.svc = NewService(store.Memory[*AccountRole, int64](Spec), f.accounts, f.roles, lifecycle.Options{})

	f.acct, err = f.accounts.Create(ctx, account.AccountRequest{
		Username: "ana", Email: "ana@example.com", Password: "password1",
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	f.admin, err = f.roles.Create(ctx, role.RoleRequest{Name: "admin"})
	if err != nil {
		t.Fatalf("create role: %v", err)
	}
	return f
}

func TestAssignRemoveReassign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, _, err := f.svc.Assign(ctx, f.acct.ID, f.admin.ID)
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}

	if _, _, err := f.svc.Assign(ctx, f.acct.ID, f.admin.ID); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("second Assign() error = %v, want conflict", err)
	}

	if err := f.svc.Remove(ctx, f.acct.ID, f.admin.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	err = f.svc.Remove(ctx, f.acct.ID, f.admin.ID)
	appErr, ok := core.AsAppError(err)
	if !ok || !errors.Is(err, core.ErrNotFound) || appErr.Message != "account does not have this role" {
		t.Fatalf("second Remove() error = %v", err)
	}

	again, _, err := f.svc.Assign(ctx, f.acct.ID, f.admin.ID)
	if err != nil {
		t.Fatalf("re-Assign() error = %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("re-Assign() created row %d, want restored row %d", again.ID, first.ID)
	}
}

func TestAssignRequiresBothSides(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, _, err := f.svc.Assign(ctx, 99, f.admin.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing account error = %v", err)
	}
	if _, _, err := f.svc.Assign(ctx, f.acct.ID, 99); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing role error = %v", err)
	}
}

func TestRoleNamesSkipTrashedRoles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	teacher, err := f.roles.Create(ctx, role.RoleRequest{Name: "teacher"})
	if err != nil {
		t.Fatalf("create role: %v", err)
	}
	for _, r := range []*role.Role{f.admin, teacher} {
		if _, _, err := f.svc.Assign(ctx, f.acct.ID, r.ID); err != nil {
			t.Fatalf("Assign(%s) error = %v", r.Name, err)
		}
	}

	if err := f.roles.Delete(ctx, teacher.ID); err != nil {
		t.Fatalf("delete role: %v", err)
	}

	names, err := f.svc.RoleNames(ctx, f.acct.ID)
	if err != nil {
		t.Fatalf("RoleNames() error = %v", err)
	}
	if !slices.Equal(names, []string{"ADMIN"}) {
		t.Errorf("RoleNames() = %v, want [ADMIN]", names)
	}
}

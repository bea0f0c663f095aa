// AngelaMos | 2026
// service_test.go

package account

import (
	"context"
	"errors"
	"testing"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

var testParams = core.Argon2Params{
	Time:    1,
	Memory:  8 * 1024,
	Threads: 1,
	KeyLen:  32,
	SaltLen: 16,
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	hasher, err := core.NewPasswordHasher(testParams)
	if err != nil {
		t.Fatalf("NewPasswordHasher() error = %v", err)
	}
	return NewService(store.Memory[*Account, int64](Spec), hasher, lifecycle.Options{})
}

func mustCreate(t *testing.T, svc *Service, req AccountRequest) *Account {
	t.Helper()
	a, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return a
}

func TestCreateHashesAndNormalizes(t *testing.T) {
	svc := newTestService(t)

	a := mustCreate(t, svc, AccountRequest{
		Username: " ana ",
		Email:    "Ana@Example.COM",
		Password: "correct horse",
	})

	if a.Username != "ana" || a.Email != "ana@example.com" {
		t.Errorf("account = %q / %q", a.Username, a.Email)
	}
	if a.PasswordHash == "" || a.PasswordHash == "correct horse" {
		t.Errorf("password not hashed: %q", a.PasswordHash)
	}
	if !a.Active || a.EmailVerified || a.LastLogin != nil {
		t.Errorf("flags = active %v verified %v last_login %v", a.Active, a.EmailVerified, a.LastLogin)
	}
}

func TestUsernameAndEmailAreUnique(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreate(t, svc, AccountRequest{Username: "ana", Email: "ana@example.com", Password: "password1"})

	tests := []struct {
		name string
		req  AccountRequest
		msg  string
	}{
		{
			"username",
			AccountRequest{Username: "ana", Email: "other@example.com", Password: "password1"},
			"username is already taken",
		},
		{
			"email",
			AccountRequest{Username: "bob", Email: "ANA@example.com", Password: "password1"},
			"email is already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			appErr, ok := core.AsAppError(err)
			if !ok || !errors.Is(err, core.ErrConflict) {
				t.Fatalf("Create() error = %v, want conflict", err)
			}
			if appErr.Message != tt.msg {
				t.Errorf("message = %q, want %q", appErr.Message, tt.msg)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	a := mustCreate(t, svc, AccountRequest{Username: "ana", Email: "ana@example.com", Password: "password1"})

	if _, err := svc.Authenticate(ctx, "ana", "password1"); err != nil {
		t.Fatalf("Authenticate(username) error = %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ANA@example.com", "password1"); err != nil {
		t.Fatalf("Authenticate(email) error = %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ana", "wrong-password"); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("wrong password error = %v, want unauthorized", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody", "password1"); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("unknown account error = %v, want unauthorized", err)
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ana", "password1"); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("trashed account error = %v, want unauthorized", err)
	}
}

func TestRecordLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	a := mustCreate(t, svc, AccountRequest{Username: "ana", Email: "ana@example.com", Password: "password1"})

	got, err := svc.RecordLogin(ctx, a.ID)
	if err != nil {
		t.Fatalf("RecordLogin() error = %v", err)
	}
	if got.LastLogin == nil {
		t.Fatal("last_login not set")
	}

	if _, err := svc.RecordLogin(ctx, 999); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("RecordLogin(missing) error = %v, want not found", err)
	}
}

func TestListByActive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreate(t, svc, AccountRequest{Username: "ana", Email: "ana@example.com", Password: "password1"})

	enabled, err := svc.ListByActive(ctx, true)
	if err != nil {
		t.Fatalf("ListByActive(true) error = %v", err)
	}
	disabled, err := svc.ListByActive(ctx, false)
	if err != nil {
		t.Fatalf("ListByActive(false) error = %v", err)
	}

	if len(enabled) != 1 || len(disabled) != 0 {
		t.Errorf("enabled = %d, disabled = %d", len(enabled), len(disabled))
	}
}

// AngelaMos | 2026
// service_test.go

package term

import (
	"context"
	"errors"
	"testing"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

func TestTermLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.Memory[*Term, int64](Spec), lifecycle.Options{})

	first, err := svc.Create(ctx, TermRequest{Number: 1, Name: "  First term "})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.Name != "First term" {
		t.Errorf("Name = %q, want trimmed", first.Name)
	}

	// terms carry no uniqueness rule
	if _, err := svc.Create(ctx, TermRequest{Number: 1, Name: "First term"}); err != nil {
		t.Fatalf("duplicate Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, first.ID, TermRequest{Number: 2, Name: "Second term"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Number != 2 || !updated.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("updated = %+v", updated)
	}

	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n, _ := svc.Count(ctx, lifecycle.Trashed); n != 1 {
		t.Errorf("Count(trashed) = %d, want 1", n)
	}
	if _, err := svc.Update(ctx, first.ID, TermRequest{Number: 3, Name: "x"}); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Update(trashed) error = %v, want not found", err)
	}
	if err := svc.Purge(ctx, first.ID); err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if _, err := svc.Restore(ctx, first.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Restore(purged) error = %v, want not found", err)
	}
}

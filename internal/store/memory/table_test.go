// AngelaMos | 2026
// table_test.go

package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store/memory"
)

type badge struct {
	ID    int64   `db:"id"`
	Label string  `db:"label"`
	Tag   *string `db:"tag"`
	lifecycle.Timestamps
}

func (b *badge) Key() int64 { return b.ID }

func newBadges() *memory.Table[*badge, int64] {
	return memory.NewTable[*badge, int64](memory.Spec[*badge]{
		Name:      "badge",
		Key:       "id",
		Generated: true,
		Unique: []lifecycle.Unique[*badge]{
			{Name: "tag", Columns: []string{"tag"}, Message: "tag taken"},
		},
	})
}

func TestNilColumnsAreNotWritten(t *testing.T) {
	ctx := context.Background()
	tbl := newBadges()

	tag := "gold"
	for _, b := range []*badge{{Label: "a"}, {Label: "b"}, {Label: "c", Tag: &tag}} {
		if err := tbl.Insert(ctx, b); err != nil {
			t.Fatalf("Insert(%s) error = %v", b.Label, err)
		}
		if b.Label != "c" && b.Tag != nil {
			t.Fatalf("Insert(%s) set Tag = %q", b.Label, *b.Tag)
		}
	}

	rows, err := tbl.List(ctx, lifecycle.Query{
		State: lifecycle.Any,
		Where: map[string]any{"tag": "gold"},
	})
	if err != nil || len(rows) != 1 || rows[0].Label != "c" {
		t.Fatalf("List(tag=gold) = %+v, %v", rows, err)
	}

	for _, id := range []int64{1, 2} {
		got, err := tbl.Get(ctx, id, lifecycle.Any)
		if err != nil {
			t.Fatalf("Get(%d) error = %v", id, err)
		}
		if got.Tag != nil {
			t.Errorf("stored badge %d Tag = %q, want nil", id, *got.Tag)
		}
		if got.DeletedAt != nil {
			t.Errorf("stored badge %d DeletedAt = %v, want nil", id, got.DeletedAt)
		}
	}

	dup := &badge{Label: "d", Tag: &tag}
	if err := tbl.Insert(ctx, dup); !errors.Is(err, core.ErrDuplicateKey) {
		t.Errorf("Insert(duplicate tag) error = %v, want duplicate key", err)
	}
}

func TestConcurrentFilteredReads(t *testing.T) {
	ctx := context.Background()
	tbl := newBadges()

	for _, label := range []string{"a", "b", "c"} {
		if err := tbl.Insert(ctx, &badge{Label: label}); err != nil {
			t.Fatalf("Insert(%s) error = %v", label, err)
		}
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, err := tbl.List(ctx, lifecycle.Query{
				State: lifecycle.Active,
				Where: map[string]any{"tag": "gold"},
			})
			if err != nil || len(rows) != 0 {
				t.Errorf("List(tag=gold) = %+v, %v", rows, err)
			}
		}()
	}
	wg.Wait()

	rows, err := tbl.List(ctx, lifecycle.Query{State: lifecycle.Active})
	if err != nil || len(rows) != 3 {
		t.Fatalf("List() = %+v, %v", rows, err)
	}
	for _, r := range rows {
		if r.Tag != nil {
			t.Errorf("badge %d Tag = %q after filtered reads, want nil", r.ID, *r.Tag)
		}
	}
}

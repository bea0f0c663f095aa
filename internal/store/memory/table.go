// AngelaMos | 2026
// table.go

package memory

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Spec[T lifecycle.Stamped] struct {
	Name string
	// Key is the db column of the primary key.
	Key       string
	Generated bool
	// Unique is enforced like a partial unique index over active rows.
	Unique []lifecycle.Unique[T]
}

// Table keeps rows in a map and hands out copies, so callers mutating a
// returned record never touch stored state without an explicit Update.
// Foreign keys are not enforced.
type Table[T lifecycle.Record[K], K cmp.Ordered] struct {
	mu   sync.RWMutex
	spec Spec[T]
	rows map[K]T
	seq  int64
}

func NewTable[T lifecycle.Record[K], K cmp.Ordered](spec Spec[T]) *Table[T, K] {
	return &Table[T, K]{spec: spec, rows: make(map[K]T)}
}

func (t *Table[T, K]) Get(
	_ context.Context,
	key K,
	state lifecycle.State,
) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.rows[key]
	if !ok || !state.Admits(rec.Stamps()) {
		var zero T
		return zero, fmt.Errorf("%s %v: %w", t.spec.Name, key, core.ErrNotFound)
	}
	return clone(rec), nil
}

func (t *Table[T, K]) List(_ context.Context, q lifecycle.Query) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, rec := range t.rows {
		if !q.State.Admits(rec.Stamps()) || !lifecycle.Matches(rec, q.Where) {
			continue
		}
		out = append(out, clone(rec))
	}

	slices.SortFunc(out, func(a, b T) int {
		return cmp.Compare(a.Key(), b.Key())
	})
	return out, nil
}

func (t *Table[T, K]) Insert(_ context.Context, rec T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.spec.Generated {
		if _, exists := t.rows[rec.Key()]; exists {
			return fmt.Errorf("%s %v: %w", t.spec.Name, rec.Key(), core.ErrDuplicateKey)
		}
	}

	if err := t.checkUnique(rec, nil); err != nil {
		return err
	}

	if t.spec.Generated {
		t.seq++
		if err := t.assignKey(rec, t.seq); err != nil {
			return err
		}
	}

	t.rows[rec.Key()] = clone(rec)
	return nil
}

func (t *Table[T, K]) Update(_ context.Context, rec T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := rec.Key()
	if _, ok := t.rows[key]; !ok {
		return fmt.Errorf("%s %v: %w", t.spec.Name, key, core.ErrNotFound)
	}

	if err := t.checkUnique(rec, &key); err != nil {
		return err
	}

	t.rows[key] = clone(rec)
	return nil
}

func (t *Table[T, K]) Delete(_ context.Context, key K) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return fmt.Errorf("%s %v: %w", t.spec.Name, key, core.ErrNotFound)
	}

	delete(t.rows, key)
	return nil
}

// Len counts rows in every state.
func (t *Table[T, K]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *Table[T, K]) checkUnique(rec T, self *K) error {
	for _, u := range t.spec.Unique {
		for key, row := range t.rows {
			if self != nil && key == *self {
				continue
			}
			if u.Collides(row, rec) {
				return fmt.Errorf("%s %s: %w", t.spec.Name, u.Name, core.ErrDuplicateKey)
			}
		}
	}
	return nil
}

func (t *Table[T, K]) assignKey(rec T, id int64) error {
	v := reflect.Indirect(reflect.ValueOf(rec))
	f := lifecycle.Mapper.FieldByName(v, t.spec.Key)

	switch {
	case f.CanInt():
		f.SetInt(id)
	case f.CanUint():
		//nolint:gosec // G115: sequence is positive
		f.SetUint(uint64(id))
	default:
		return fmt.Errorf("%s: generated key %q is not an integer", t.spec.Name, t.spec.Key)
	}
	return nil
}

func clone[T any](rec T) T {
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return rec
	}
	cp := reflect.New(v.Elem().Type())
	cp.Elem().Set(v.Elem())
	return cp.Interface().(T) //nolint:forcetypeassert // same type by construction
}

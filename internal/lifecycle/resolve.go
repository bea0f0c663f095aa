// AngelaMos | 2026
// resolve.go

package lifecycle

import (
	"cmp"
	"context"
	"errors"

	"github.com/carterperez-dev/kixi-backend/internal/core"
)

// Finder looks up a related record by key.
type Finder[K cmp.Ordered, U any] func(ctx context.Context, key K) (U, error)

// Resolve attaches a related record. A missing relation is reported with
// found=false instead of an error so projections can substitute a
// placeholder; any other failure propagates.
func Resolve[K cmp.Ordered, U any](
	ctx context.Context,
	key K,
	find Finder[K, U],
) (rel U, found bool, err error) {
	rel, err = find(ctx, key)
	if errors.Is(err, core.ErrNotFound) {
		var zero U
		return zero, false, nil
	}
	if err != nil {
		var zero U
		return zero, false, err
	}
	return rel, true, nil
}

type memoEntry[U any] struct {
	rel   U
	found bool
}

// Memo caches Resolve results for the lifetime of one projection so a list
// of children sharing a parent fetches it once. Not safe for concurrent use.
type Memo[K cmp.Ordered, U any] struct {
	find  Finder[K, U]
	cache map[K]memoEntry[U]
}

func NewMemo[K cmp.Ordered, U any](find Finder[K, U]) *Memo[K, U] {
	return &Memo[K, U]{find: find, cache: make(map[K]memoEntry[U])}
}

func (m *Memo[K, U]) Resolve(ctx context.Context, key K) (U, bool, error) {
	if e, ok := m.cache[key]; ok {
		return e.rel, e.found, nil
	}

	rel, found, err := Resolve(ctx, key, m.find)
	if err != nil {
		return rel, false, err
	}

	m.cache[key] = memoEntry[U]{rel: rel, found: found}
	return rel, found, nil
}

// AngelaMos | 2026
// store.go

package store

import (
	"cmp"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store/memory"
	"github.com/carterperez-dev/kixi-backend/internal/store/sqlstore"
)

// Spec is an entity's table description, shared by both backends.
type Spec[T lifecycle.Stamped] struct {
	Table     string
	Key       string
	Generated bool
	Columns   []string
	Unique    []lifecycle.Unique[T]
}

// Open binds spec to the configured backend.
func Open[T lifecycle.Record[K], K cmp.Ordered](
	db *core.Database,
	spec Spec[T],
) lifecycle.Store[T, K] {
	if db == nil || db.IsMemory() {
		return Memory[T, K](spec)
	}

	return sqlstore.NewTable[T, K](db.DB, sqlstore.Spec{
		Table:     spec.Table,
		Key:       spec.Key,
		Generated: spec.Generated,
		Columns:   spec.Columns,
	})
}

// Memory opens a fresh in-process table for spec.
func Memory[T lifecycle.Record[K], K cmp.Ordered](spec Spec[T]) *memory.Table[T, K] {
	return memory.NewTable[T, K](memory.Spec[T]{
		Name:      spec.Table,
		Key:       spec.Key,
		Generated: spec.Generated,
		Unique:    spec.Unique,
	})
}

// Columns appends the lifecycle timestamp columns to cols.
func Columns(cols ...string) []string {
	return append(cols, lifecycle.TimestampColumns...)
}

// AngelaMos | 2026
// record.go

package lifecycle

import (
	"cmp"
	"context"
	"time"
)

// Timestamps is embedded by every entity. DeletedAt is the only lifecycle
// discriminant: nil means Active, non-nil means Trashed.
type Timestamps struct {
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (t *Timestamps) Stamps() *Timestamps {
	return t
}

func (t *Timestamps) IsDeleted() bool {
	return t.DeletedAt != nil
}

// TimestampColumns lists the columns contributed by Timestamps.
var TimestampColumns = []string{"created_at", "updated_at", "deleted_at"}

type Stamped interface {
	Stamps() *Timestamps
}

// Record is implemented by pointers to entity structs.
type Record[K cmp.Ordered] interface {
	Stamped
	Key() K
}

type State int

const (
	Any State = iota
	Active
	Trashed
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Trashed:
		return "trashed"
	default:
		return "any"
	}
}

// Admits reports whether a record with the given stamps is in state s.
func (s State) Admits(ts *Timestamps) bool {
	switch s {
	case Active:
		return ts.DeletedAt == nil
	case Trashed:
		return ts.DeletedAt != nil
	default:
		return true
	}
}

// Query selects rows by lifecycle state and column equality.
type Query struct {
	State State
	Where map[string]any
}

// Store is the persistence boundary for one entity. Implementations must
// return core.ErrNotFound for missing keys and core.ErrDuplicateKey or
// core.ErrForeignKey for constraint violations.
type Store[T Record[K], K cmp.Ordered] interface {
	Get(ctx context.Context, key K, state State) (T, error)
	List(ctx context.Context, q Query) ([]T, error)
	// Insert persists a new row and assigns generated keys on rec.
	Insert(ctx context.Context, rec T) error
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, key K) error
}

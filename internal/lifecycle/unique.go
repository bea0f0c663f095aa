// AngelaMos | 2026
// unique.go

package lifecycle

import (
	"slices"
)

// Unique declares that Columns must be unique among active rows, optionally
// narrowed to rows matching Scope. Message is returned to clients verbatim
// on violation.
type Unique[T Stamped] struct {
	Name    string
	Columns []string
	Scope   map[string]any
	Message string
}

// Values reads the constrained column values from rec. ok is false when a
// value is absent (a nil optional column is never a duplicate).
func (u Unique[T]) Values(rec T) (vals []any, ok bool) {
	vals = make([]any, 0, len(u.Columns))
	for _, col := range u.Columns {
		v, found := Column(rec, col)
		if !found || v == nil {
			return nil, false
		}
		vals = append(vals, v)
	}
	return vals, true
}

// Applies reports whether rec falls inside the constraint's scope.
func (u Unique[T]) Applies(rec T) bool {
	if rec.Stamps().DeletedAt != nil {
		return false
	}
	if _, ok := u.Values(rec); !ok {
		return false
	}
	return Matches(rec, u.Scope)
}

// Where is the lookup query for rows holding the same values as rec.
func (u Unique[T]) Where(rec T) map[string]any {
	vals, _ := u.Values(rec)
	where := make(map[string]any, len(u.Columns)+len(u.Scope))
	for k, v := range u.Scope {
		where[k] = v
	}
	for i, col := range u.Columns {
		where[col] = vals[i]
	}
	return where
}

// Collides reports whether a and b would violate the constraint together.
func (u Unique[T]) Collides(a, b T) bool {
	if !u.Applies(a) || !u.Applies(b) {
		return false
	}
	av, _ := u.Values(a)
	bv, _ := u.Values(b)
	return slices.EqualFunc(av, bv, Equal)
}

type snapshot struct {
	vals    []any
	applies bool
}

func (u Unique[T]) snapshot(rec T) snapshot {
	vals, _ := u.Values(rec)
	return snapshot{vals: vals, applies: u.Applies(rec)}
}

// changed reports whether an update moved rec into a position the guard
// has not yet verified.
func (s snapshot) changed(after snapshot) bool {
	if !after.applies {
		return false
	}
	if !s.applies {
		return true
	}
	return !slices.EqualFunc(s.vals, after.vals, Equal)
}

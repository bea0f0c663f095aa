// AngelaMos | 2026
// repository.go

package course

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*Course, int64]

var Spec = store.Spec[*Course]{
	Table:     "courses",
	Key:       "id",
	Generated: true,
	Columns:   store.Columns("code", "name", "description"),
	Unique: []lifecycle.Unique[*Course]{{
		Name:    "code",
		Columns: []string{"code"},
		Message: "a course with this code already exists",
	}},
}

func NewStore(db *core.Database) Store {
	return store.Open[*Course, int64](db, Spec)
}

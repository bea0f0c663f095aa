// AngelaMos | 2026
// repository.go

package role

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*Role, int64]

var Spec = store.Spec[*Role]{
	Table:     "roles",
	Key:       "id",
	Generated: true,
	Columns:   store.Columns("name", "description"),
	Unique: []lifecycle.Unique[*Role]{{
		Name:    "name",
		Columns: []string{"name"},
		Message: "a role with this name already exists",
	}},
}

func NewStore(db *core.Database) Store {
	return store.Open[*Role, int64](db, Spec)
}

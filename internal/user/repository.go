// AngelaMos | 2026
// repository.go

package user

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*User, int64]

var Spec = store.Spec[*User]{
	Table:     "users",
	Key:       "id",
	Generated: true,
	Columns:   store.Columns("account_id", "first_name", "last_name", "photo"),
}

func NewStore(db *core.Database) Store {
	return store.Open[*User, int64](db, Spec)
}

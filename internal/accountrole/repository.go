// AngelaMos | 2026
// repository.go

package accountrole

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*AccountRole, int64]

var Spec = store.Spec[*AccountRole]{
	Table:     "account_roles",
	Key:       "id",
	Generated: true,
	Columns:   store.Columns("account_id", "role_id"),
	Unique: []lifecycle.Unique[*AccountRole]{{
		Name:    "account_role",
		Columns: []string{"account_id", "role_id"},
		Message: "account already has this role",
	}},
}

func NewStore(db *core.Database) Store {
	return store.Open[*AccountRole, int64](db, Spec)
}

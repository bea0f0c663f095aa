// AngelaMos | 2026
// repository.go

package account

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*Account, int64]

var Spec = store.Spec[*Account]{
	Table:     "accounts",
	Key:       "id",
	Generated: true,
	Columns: store.Columns(
		"username",
		"email",
		"password_hash",
		"email_verified",
		"active",
		"last_login",
	),
	Unique: []lifecycle.Unique[*Account]{
		{
			Name:    "username",
			Columns: []string{"username"},
			Message: "username is already taken",
		},
		{
			Name:    "email",
			Columns: []string{"email"},
			Message: "email is already registered",
		},
	},
}

func NewStore(db *core.Database) Store {
	return store.Open[*Account, int64](db, Spec)
}

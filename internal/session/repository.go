// AngelaMos | 2026
// repository.go

package session

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*Session, int64]

var Spec = store.Spec[*Session]{
	Table:     "sessions",
	Key:       "id",
	Generated: true,
	Columns: store.Columns(
		"account_id",
		"token",
		"ip_address",
		"expires_at",
		"last_used",
	),
	Unique: []lifecycle.Unique[*Session]{{
		Name:    "token",
		Columns: []string{"token"},
		Message: "a session with this token already exists",
	}},
}

func NewStore(db *core.Database) Store {
	return store.Open[*Session, int64](db, Spec)
}

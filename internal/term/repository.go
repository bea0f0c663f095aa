// AngelaMos | 2026
// repository.go

package term

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*Term, int64]

var Spec = store.Spec[*Term]{
	Table:     "terms",
	Key:       "id",
	Generated: true,
	Columns:   store.Columns("number", "name"),
}

func NewStore(db *core.Database) Store {
	return store.Open[*Term, int64](db, Spec)
}

// AngelaMos | 2026
// repository.go

package schoolyear

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*SchoolYear, int64]

var Spec = store.Spec[*SchoolYear]{
	Table:     "school_years",
	Key:       "id",
	Generated: true,
	Columns:   store.Columns("start_year", "end_year"),
}

func NewStore(db *core.Database) Store {
	return store.Open[*SchoolYear, int64](db, Spec)
}

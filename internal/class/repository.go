// AngelaMos | 2026
// repository.go

package class

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*Class, string]

var Spec = store.Spec[*Class]{
	Table:   "classes",
	Key:     "code",
	Columns: store.Columns("code", "grade", "course_id", "school_year_id"),
}

func NewStore(db *core.Database) Store {
	return store.Open[*Class, string](db, Spec)
}

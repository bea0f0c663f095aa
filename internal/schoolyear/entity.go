// AngelaMos | 2026
// entity.go

package schoolyear

import (
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type SchoolYear struct {
	ID        int64 `db:"id"`
	StartYear int   `db:"start_year"`
	EndYear   int   `db:"end_year"`
	lifecycle.Timestamps
}

func (y *SchoolYear) Key() int64 {
	return y.ID
}

// AngelaMos | 2026
// entity.go

package term

import (
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Term struct {
	ID     int64  `db:"id"`
	Number int    `db:"number"`
	Name   string `db:"name"`
	lifecycle.Timestamps
}

func (t *Term) Key() int64 {
	return t.ID
}

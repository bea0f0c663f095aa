// AngelaMos | 2026
// entity.go

package course

import (
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Course struct {
	ID          int64  `db:"id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	Description string `db:"description"`
	lifecycle.Timestamps
}

func (c *Course) Key() int64 {
	return c.ID
}

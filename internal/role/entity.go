// AngelaMos | 2026
// entity.go

package role

import (
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Role struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	lifecycle.Timestamps
}

func (r *Role) Key() int64 {
	return r.ID
}

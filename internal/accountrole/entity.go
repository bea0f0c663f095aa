// AngelaMos | 2026
// entity.go

package accountrole

import (
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

// AccountRole assigns a role to an account. Removing a role trashes the
// row; assigning it again restores the same row.
type AccountRole struct {
	ID        int64 `db:"id"`
	AccountID int64 `db:"account_id"`
	RoleID    int64 `db:"role_id"`
	lifecycle.Timestamps
}

func (a *AccountRole) Key() int64 {
	return a.ID
}

// AngelaMos | 2026
// entity.go

package user

import (
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

// User is the personal profile attached to an account.
type User struct {
	ID        int64   `db:"id"`
	AccountID int64   `db:"account_id"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Photo     *string `db:"photo"`
	lifecycle.Timestamps
}

func (u *User) Key() int64 {
	return u.ID
}

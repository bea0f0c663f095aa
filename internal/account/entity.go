// AngelaMos | 2026
// entity.go

package account

import (
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Account struct {
	ID            int64      `db:"id"`
	Username      string     `db:"username"`
	Email         string     `db:"email"`
	PasswordHash  string     `db:"password_hash"`
	EmailVerified bool       `db:"email_verified"`
	Active        bool       `db:"active"`
	LastLogin     *time.Time `db:"last_login"`
	lifecycle.Timestamps
}

func (a *Account) Key() int64 {
	return a.ID
}

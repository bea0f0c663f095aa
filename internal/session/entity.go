// AngelaMos | 2026
// entity.go

package session

import (
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Session struct {
	ID        int64     `db:"id"`
	AccountID int64     `db:"account_id"`
	Token     string    `db:"token"`
	IPAddress string    `db:"ip_address"`
	ExpiresAt time.Time `db:"expires_at"`
	LastUsed  time.Time `db:"last_used"`
	lifecycle.Timestamps
}

func (s *Session) Key() int64 {
	return s.ID
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

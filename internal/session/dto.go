// AngelaMos | 2026
// dto.go

package session

import (
	"strings"
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/account"
)

type SessionRequest struct {
	AccountID int64      `json:"account_id" validate:"required,gt=0"`
	Token     string     `json:"token"      validate:"required,max=2048"`
	IPAddress string     `json:"ip_address" validate:"required,max=64"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func (r *SessionRequest) Normalize() {
	r.Token = strings.TrimSpace(r.Token)
	r.IPAddress = strings.TrimSpace(r.IPAddress)
}

type SessionResponse struct {
	ID        int64                    `json:"id"`
	AccountID int64                    `json:"account_id"`
	Account   *account.AccountResponse `json:"account"`
	Token     string                   `json:"token"`
	IPAddress string                   `json:"ip_address"`
	ExpiresAt time.Time                `json:"expires_at"`
	LastUsed  time.Time                `json:"last_used"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
	DeletedAt *time.Time               `json:"deleted_at,omitempty"`
}

func ToSessionResponse(s *Session, acct *account.Account) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		AccountID: s.AccountID,
		Account:   account.ToAccountResponsePtr(acct),
		Token:     s.Token,
		IPAddress: s.IPAddress,
		ExpiresAt: s.ExpiresAt,
		LastUsed:  s.LastUsed,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		DeletedAt: s.DeletedAt,
	}
}

// AngelaMos | 2026
// dto.go

package auth

import (
	"strings"
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/account"
)

// LoginRequest accepts a username or an email as Login.
type LoginRequest struct {
	Login    string `json:"login"    validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

func (r *LoginRequest) Normalize() {
	r.Login = strings.TrimSpace(r.Login)
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AuthResponse struct {
	Account   account.AccountResponse `json:"account"`
	Roles     []string                `json:"roles"`
	SessionID int64                   `json:"session_id"`
	Tokens    TokenResponse           `json:"tokens"`
}

type MeResponse struct {
	Account   account.AccountResponse `json:"account"`
	Roles     []string                `json:"roles"`
	SessionID int64                   `json:"session_id"`
}

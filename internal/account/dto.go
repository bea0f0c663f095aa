// AngelaMos | 2026
// dto.go

package account

import (
	"strings"
	"time"
)

type AccountRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

func (r *AccountRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// AccountResponse never carries the password hash.
type AccountResponse struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"email_verified"`
	Active        bool       `json:"active"`
	LastLogin     *time.Time `json:"last_login"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

func ToAccountResponse(a *Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		EmailVerified: a.EmailVerified,
		Active:        a.Active,
		LastLogin:     a.LastLogin,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		DeletedAt:     a.DeletedAt,
	}
}

func ToAccountResponseList(accounts []*Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, ToAccountResponse(a))
	}
	return responses
}

// ToAccountResponsePtr projects a hydrated relation; nil stays nil so it
// renders as JSON null.
func ToAccountResponsePtr(a *Account) *AccountResponse {
	if a == nil {
		return nil
	}
	resp := ToAccountResponse(a)
	return &resp
}

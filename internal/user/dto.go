// AngelaMos | 2026
// dto.go

package user

import (
	"strings"
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/account"
)

type UserRequest struct {
	AccountID int64   `json:"account_id" validate:"required,gt=0"`
	FirstName string  `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string  `json:"last_name"  validate:"required,min=2,max=100"`
	Photo     *string `json:"photo"      validate:"omitempty,max=500"`
}

func (r *UserRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	if r.Photo != nil {
		photo := strings.TrimSpace(*r.Photo)
		if photo == "" {
			r.Photo = nil
		} else {
			r.Photo = &photo
		}
	}
}

type UserResponse struct {
	ID        int64                    `json:"id"`
	AccountID int64                    `json:"account_id"`
	Account   *account.AccountResponse `json:"account"`
	FirstName string                   `json:"first_name"`
	LastName  string                   `json:"last_name"`
	Photo     *string                  `json:"photo"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
	DeletedAt *time.Time               `json:"deleted_at,omitempty"`
}

func ToUserResponse(u *User, acct *account.Account) UserResponse {
	return UserResponse{
		ID:        u.ID,
		AccountID: u.AccountID,
		Account:   account.ToAccountResponsePtr(acct),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Photo:     u.Photo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
	}
}

// AngelaMos | 2026
// dto.go

package accountrole

import (
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/role"
)

type AccountRoleResponse struct {
	ID        int64             `json:"id"`
	AccountID int64             `json:"account_id"`
	Role      role.RoleResponse `json:"role"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func ToAccountRoleResponse(a *AccountRole, r *role.Role) AccountRoleResponse {
	return AccountRoleResponse{
		ID:        a.ID,
		AccountID: a.AccountID,
		Role:      role.ToRoleResponse(r),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

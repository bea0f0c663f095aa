// AngelaMos | 2026
// dto.go

package role

import (
	"strings"
	"time"
)

type RoleRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

func (r *RoleRequest) Normalize() {
	r.Name = strings.ToUpper(strings.TrimSpace(r.Name))
	r.Description = strings.TrimSpace(r.Description)
}

type RoleResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func ToRoleResponse(r *Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		DeletedAt:   r.DeletedAt,
	}
}

func ToRoleResponseList(roles []*Role) []RoleResponse {
	responses := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, ToRoleResponse(r))
	}
	return responses
}

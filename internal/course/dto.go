// AngelaMos | 2026
// dto.go

package course

import (
	"strings"
	"time"
)

type CourseRequest struct {
	Code        string `json:"code"        validate:"required,min=2,max=50"`
	Name        string `json:"name"        validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"max=5000"`
}

// Normalize trims all fields and upper-cases the code.
func (r *CourseRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

type CourseResponse struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func ToCourseResponse(c *Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

func ToCourseResponseList(courses []*Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, ToCourseResponse(c))
	}
	return responses
}

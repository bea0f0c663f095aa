// AngelaMos | 2026
// dto.go

package class

import (
	"strings"
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/course"
	"github.com/carterperez-dev/kixi-backend/internal/schoolyear"
)

type CreateClassRequest struct {
	Code         string `json:"code"           validate:"required,max=50"`
	Grade        string `json:"grade"          validate:"required,max=50"`
	CourseID     int64  `json:"course_id"      validate:"required,gt=0"`
	SchoolYearID int64  `json:"school_year_id" validate:"required,gt=0"`
}

func (r *CreateClassRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Grade = strings.TrimSpace(r.Grade)
}

// UpdateClassRequest has no code: a class code never changes.
type UpdateClassRequest struct {
	Grade        string `json:"grade"          validate:"required,max=50"`
	CourseID     int64  `json:"course_id"      validate:"required,gt=0"`
	SchoolYearID int64  `json:"school_year_id" validate:"required,gt=0"`
}

func (r *UpdateClassRequest) Normalize() {
	r.Grade = strings.TrimSpace(r.Grade)
}

type ClassResponse struct {
	Code       string                        `json:"code"`
	Grade      string                        `json:"grade"`
	Course     course.CourseResponse         `json:"course"`
	SchoolYear schoolyear.SchoolYearResponse `json:"school_year"`
	CreatedAt  time.Time                     `json:"created_at"`
	UpdatedAt  time.Time                     `json:"updated_at"`
	DeletedAt  *time.Time                    `json:"deleted_at,omitempty"`
}

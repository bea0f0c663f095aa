// AngelaMos | 2026
// dto.go

package schoolyear

import (
	"time"
)

type SchoolYearRequest struct {
	StartYear int `json:"start_year" validate:"required,gt=0"`
	EndYear   int `json:"end_year"   validate:"required,gt=0,gtefield=StartYear"`
}

type SchoolYearResponse struct {
	ID        int64      `json:"id"`
	StartYear int        `json:"start_year"`
	EndYear   int        `json:"end_year"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func ToSchoolYearResponse(y *SchoolYear) SchoolYearResponse {
	return SchoolYearResponse{
		ID:        y.ID,
		StartYear: y.StartYear,
		EndYear:   y.EndYear,
		CreatedAt: y.CreatedAt,
		UpdatedAt: y.UpdatedAt,
		DeletedAt: y.DeletedAt,
	}
}

func ToSchoolYearResponseList(years []*SchoolYear) []SchoolYearResponse {
	responses := make([]SchoolYearResponse, 0, len(years))
	for _, y := range years {
		responses = append(responses, ToSchoolYearResponse(y))
	}
	return responses
}

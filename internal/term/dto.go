// AngelaMos | 2026
// dto.go

package term

import (
	"strings"
	"time"
)

type TermRequest struct {
	Number int    `json:"number" validate:"required,gt=0"`
	Name   string `json:"name"   validate:"required,max=100"`
}

func (r *TermRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type TermResponse struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func ToTermResponse(t *Term) TermResponse {
	return TermResponse{
		ID:        t.ID,
		Number:    t.Number,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		DeletedAt: t.DeletedAt,
	}
}

func ToTermResponseList(terms []*Term) []TermResponse {
	responses := make([]TermResponse, 0, len(terms))
	for _, t := range terms {
		responses = append(responses, ToTermResponse(t))
	}
	return responses
}

// AngelaMos | 2026
// dto.go

package simulation

import (
	"strings"
	"time"
)

type CreateSimulationRequest struct {
	AccountID    int64      `json:"account_id"     validate:"required,gt=0"`
	StatementID  int64      `json:"statement_id"   validate:"required,gt=0"`
	SchoolYearID int64      `json:"school_year_id" validate:"required,gt=0"`
	StartedAt    *time.Time `json:"started_at"`
}

type UpdateStatusRequest struct {
	Status           Status     `json:"status"             validate:"required"`
	FinishedAt       *time.Time `json:"finished_at"`
	TimeSpentSeconds *int       `json:"time_spent_seconds" validate:"omitempty,gte=0"`
	FinalScore       *float64   `json:"final_score"`
}

func (r *UpdateStatusRequest) Normalize() {
	r.Status = Status(strings.ToUpper(strings.TrimSpace(string(r.Status))))
}

type SimulationResponse struct {
	ID               int64      `json:"id"`
	AccountID        int64      `json:"account_id"`
	StatementID      int64      `json:"statement_id"`
	SchoolYearID     int64      `json:"school_year_id"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at"`
	TimeSpentSeconds *int       `json:"time_spent_seconds"`
	FinalScore       *float64   `json:"final_score"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

func ToSimulationResponse(s *Simulation) SimulationResponse {
	return SimulationResponse{
		ID:               s.ID,
		AccountID:        s.AccountID,
		StatementID:      s.StatementID,
		SchoolYearID:     s.SchoolYearID,
		StartedAt:        s.StartedAt,
		FinishedAt:       s.FinishedAt,
		TimeSpentSeconds: s.TimeSpentSeconds,
		FinalScore:       s.FinalScore,
		Status:           s.Status,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		DeletedAt:        s.DeletedAt,
	}
}

func ToSimulationResponseList(sims []*Simulation) []SimulationResponse {
	responses := make([]SimulationResponse, 0, len(sims))
	for _, s := range sims {
		responses = append(responses, ToSimulationResponse(s))
	}
	return responses
}

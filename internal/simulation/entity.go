// AngelaMos | 2026
// entity.go

package simulation

import (
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
	StatusCancelled  Status = "CANCELLED"
)

// Terminal reports whether no further status change is allowed.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

// Simulation is one attempt by an account at a statement. FinishedAt and
// TimeSpentSeconds are set only once the status is FINISHED.
type Simulation struct {
	ID               int64      `db:"id"`
	AccountID        int64      `db:"account_id"`
	StatementID      int64      `db:"statement_id"`
	SchoolYearID     int64      `db:"school_year_id"`
	StartedAt        time.Time  `db:"started_at"`
	FinishedAt       *time.Time `db:"finished_at"`
	TimeSpentSeconds *int       `db:"time_spent_seconds"`
	FinalScore       *float64   `db:"final_score"`
	Status           Status     `db:"status"`
	lifecycle.Timestamps
}

func (s *Simulation) Key() int64 {
	return s.ID
}

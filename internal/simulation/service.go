// AngelaMos | 2026
// service.go

package simulation

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/kixi-backend/internal/account"
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/schoolyear"
)

type AccountFinder interface {
	Get(ctx context.Context, id int64) (*account.Account, error)
}

type SchoolYearFinder interface {
	Get(ctx context.Context, id int64) (*schoolyear.SchoolYear, error)
}

type Service struct {
	engine   *lifecycle.Engine[*Simulation, int64]
	accounts AccountFinder
	years    SchoolYearFinder
}

func NewService(
	st Store,
	accounts AccountFinder,
	years SchoolYearFinder,
	opts lifecycle.Options,
) *Service {
	return &Service{
		engine: lifecycle.New(lifecycle.Config[*Simulation, int64]{
			Entity: "simulation",
			Store:  st,
			Unique: Spec.Unique,
		}, opts),
		accounts: accounts,
		years:    years,
	}
}

func (s *Service) List(ctx context.Context) ([]*Simulation, error) {
	return s.engine.ListActive(ctx)
}

func (s *Service) ListTrashed(ctx context.Context) ([]*Simulation, error) {
	return s.engine.ListTrashed(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Simulation, error) {
	return s.engine.GetActive(ctx, id)
}

// Create starts a simulation. StartedAt defaults to now.
func (s *Service) Create(
	ctx context.Context,
	req CreateSimulationRequest,
) (*Simulation, error) {
	if _, err := s.accounts.Get(ctx, req.AccountID); err != nil {
		return nil, err
	}
	if _, err := s.years.Get(ctx, req.SchoolYearID); err != nil {
		return nil, err
	}

	started := s.engine.Now()
	if req.StartedAt != nil {
		started = req.StartedAt.UTC()
	}

	return s.engine.Create(ctx, &Simulation{
		AccountID:    req.AccountID,
		StatementID:  req.StatementID,
		SchoolYearID: req.SchoolYearID,
		StartedAt:    started,
		Status:       StatusInProgress,
	})
}

// UpdateStatus moves an IN_PROGRESS simulation to FINISHED or CANCELLED.
// Finishing requires the finish time and time spent; the score is optional.
func (s *Service) UpdateStatus(
	ctx context.Context,
	id int64,
	req UpdateStatusRequest,
) (*Simulation, error) {
	req.Normalize()

	return s.engine.Update(ctx, id, func(sim *Simulation) error {
		if sim.Status != StatusInProgress {
			return core.InvalidStateError(fmt.Sprintf(
				"simulation %d is %s and cannot be updated", sim.ID, sim.Status,
			))
		}

		switch req.Status {
		case StatusFinished:
			if req.FinishedAt == nil || req.TimeSpentSeconds == nil {
				return core.InvalidInputError(
					"finished_at and time_spent_seconds are required to finish a simulation",
				)
			}
			if *req.TimeSpentSeconds < 0 {
				return core.InvalidInputError("time_spent_seconds must not be negative")
			}
			finished := req.FinishedAt.UTC()
			spent := *req.TimeSpentSeconds
			sim.FinishedAt = &finished
			sim.TimeSpentSeconds = &spent
			sim.FinalScore = req.FinalScore
		case StatusCancelled:
		default:
			return core.InvalidInputError(fmt.Sprintf(
				"invalid status %q: must be %s or %s",
				req.Status, StatusFinished, StatusCancelled,
			))
		}

		sim.Status = req.Status
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.engine.SoftDelete(ctx, id)
}

func (s *Service) Restore(ctx context.Context, id int64) (*Simulation, error) {
	return s.engine.Restore(ctx, id)
}

func (s *Service) Purge(ctx context.Context, id int64) error {
	return s.engine.Purge(ctx, id)
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

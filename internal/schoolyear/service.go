// AngelaMos | 2026
// service.go

package schoolyear

import (
	"context"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Service struct {
	engine *lifecycle.Engine[*SchoolYear, int64]
}

func NewService(st Store, opts lifecycle.Options) *Service {
	return &Service{
		engine: lifecycle.New(lifecycle.Config[*SchoolYear, int64]{
			Entity: "school year",
			Store:  st,
		}, opts),
	}
}

func (s *Service) List(ctx context.Context) ([]*SchoolYear, error) {
	return s.engine.ListActive(ctx)
}

func (s *Service) ListTrashed(ctx context.Context) ([]*SchoolYear, error) {
	return s.engine.ListTrashed(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*SchoolYear, error) {
	return s.engine.GetActive(ctx, id)
}

// Lookup finds a school year in any lifecycle state.
func (s *Service) Lookup(ctx context.Context, id int64) (*SchoolYear, error) {
	return s.engine.Lookup(ctx, id, lifecycle.Any)
}

func (s *Service) Create(
	ctx context.Context,
	req SchoolYearRequest,
) (*SchoolYear, error) {
	if err := checkRange(req); err != nil {
		return nil, err
	}
	return s.engine.Create(ctx, &SchoolYear{
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	})
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req SchoolYearRequest,
) (*SchoolYear, error) {
	if err := checkRange(req); err != nil {
		return nil, err
	}
	return s.engine.Update(ctx, id, func(y *SchoolYear) error {
		y.StartYear = req.StartYear
		y.EndYear = req.EndYear
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.engine.SoftDelete(ctx, id)
}

func (s *Service) Restore(ctx context.Context, id int64) (*SchoolYear, error) {
	return s.engine.Restore(ctx, id)
}

func (s *Service) Purge(ctx context.Context, id int64) error {
	return s.engine.Purge(ctx, id)
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

func checkRange(req SchoolYearRequest) error {
	if req.StartYear <= 0 || req.EndYear <= 0 {
		return core.InvalidInputError("school year bounds must be positive")
	}
	if req.EndYear < req.StartYear {
		return core.InvalidInputError("end year must not precede start year")
	}
	return nil
}

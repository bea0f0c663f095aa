// AngelaMos | 2026
// service.go

package course

import (
	"context"

	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Service struct {
	engine *lifecycle.Engine[*Course, int64]
}

func NewService(st Store, opts lifecycle.Options) *Service {
	return &Service{
		engine: lifecycle.New(lifecycle.Config[*Course, int64]{
			Entity: "course",
			Store:  st,
			Unique: Spec.Unique,
		}, opts),
	}
}

func (s *Service) List(ctx context.Context) ([]*Course, error) {
	return s.engine.ListActive(ctx)
}

func (s *Service) ListTrashed(ctx context.Context) ([]*Course, error) {
	return s.engine.ListTrashed(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Course, error) {
	return s.engine.GetActive(ctx, id)
}

// Lookup finds a course in any lifecycle state.
func (s *Service) Lookup(ctx context.Context, id int64) (*Course, error) {
	return s.engine.Lookup(ctx, id, lifecycle.Any)
}

func (s *Service) Create(ctx context.Context, req CourseRequest) (*Course, error) {
	req.Normalize()
	return s.engine.Create(ctx, &Course{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req CourseRequest,
) (*Course, error) {
	req.Normalize()
	return s.engine.Update(ctx, id, func(c *Course) error {
		c.Code = req.Code
		c.Name = req.Name
		c.Description = req.Description
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.engine.SoftDelete(ctx, id)
}

func (s *Service) Restore(ctx context.Context, id int64) (*Course, error) {
	return s.engine.Restore(ctx, id)
}

func (s *Service) Purge(ctx context.Context, id int64) error {
	return s.engine.Purge(ctx, id)
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

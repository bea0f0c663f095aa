// AngelaMos | 2026
// service.go

package term

import (
	"context"

	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Service struct {
	engine *lifecycle.Engine[*Term, int64]
}

func NewService(st Store, opts lifecycle.Options) *Service {
	return &Service{
		engine: lifecycle.New(lifecycle.Config[*Term, int64]{
			Entity: "term",
			Store:  st,
		}, opts),
	}
}

func (s *Service) List(ctx context.Context) ([]*Term, error) {
	return s.engine.ListActive(ctx)
}

func (s *Service) ListTrashed(ctx context.Context) ([]*Term, error) {
	return s.engine.ListTrashed(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Term, error) {
	return s.engine.GetActive(ctx, id)
}

func (s *Service) Create(ctx context.Context, req TermRequest) (*Term, error) {
	req.Normalize()
	return s.engine.Create(ctx, &Term{Number: req.Number, Name: req.Name})
}

func (s *Service) Update(ctx context.Context, id int64, req TermRequest) (*Term, error) {
	req.Normalize()
	return s.engine.Update(ctx, id, func(t *Term) error {
		t.Number = req.Number
		t.Name = req.Name
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.engine.SoftDelete(ctx, id)
}

func (s *Service) Restore(ctx context.Context, id int64) (*Term, error) {
	return s.engine.Restore(ctx, id)
}

func (s *Service) Purge(ctx context.Context, id int64) error {
	return s.engine.Purge(ctx, id)
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

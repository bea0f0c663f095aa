// AngelaMos | 2026
// service.go

package role

import (
	"context"

	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Service struct {
	engine *lifecycle.Engine[*Role, int64]
}

func NewService(st Store, opts lifecycle.Options) *Service {
	return &Service{
		engine: lifecycle.New(lifecycle.Config[*Role, int64]{
			Entity: "role",
			Store:  st,
			Unique: Spec.Unique,
		}, opts),
	}
}

func (s *Service) List(ctx context.Context) ([]*Role, error) {
	return s.engine.ListActive(ctx)
}

func (s *Service) ListTrashed(ctx context.Context) ([]*Role, error) {
	return s.engine.ListTrashed(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Role, error) {
	return s.engine.GetActive(ctx, id)
}

// GetByName finds an active role by its canonical upper case name.
func (s *Service) GetByName(ctx context.Context, name string) (*Role, error) {
	req := RoleRequest{Name: name}
	req.Normalize()
	return s.engine.GetActiveBy(ctx, map[string]any{"name": req.Name})
}

func (s *Service) Create(ctx context.Context, req RoleRequest) (*Role, error) {
	req.Normalize()
	return s.engine.Create(ctx, &Role{
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req RoleRequest) (*Role, error) {
	req.Normalize()
	return s.engine.Update(ctx, id, func(r *Role) error {
		r.Name = req.Name
		r.Description = req.Description
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.engine.SoftDelete(ctx, id)
}

func (s *Service) Restore(ctx context.Context, id int64) (*Role, error) {
	return s.engine.Restore(ctx, id)
}

func (s *Service) Purge(ctx context.Context, id int64) error {
	return s.engine.Purge(ctx, id)
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

// AngelaMos | 2026
// service.go

package accountrole

import (
	"context"
	"errors"

	"github.com/carterperez-dev/kixi-backend/internal/account"
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/role"
)

type AccountFinder interface {
	Get(ctx context.Context, id int64) (*account.Account, error)
}

type RoleFinder interface {
	Get(ctx context.Context, id int64) (*role.Role, error)
}

type Service struct {
	engine   *lifecycle.Engine[*AccountRole, int64]
	accounts AccountFinder
	roles    RoleFinder
}

func NewService(
	st Store,
	accounts AccountFinder,
	roles RoleFinder,
	opts lifecycle.Options,
) *Service {
	return &Service{
		engine: lifecycle.New(lifecycle.Config[*AccountRole, int64]{
			Entity: "account role",
			Store:  st,
			Unique: Spec.Unique,
		}, opts),
		accounts: accounts,
		roles:    roles,
	}
}

// Assign gives accountID the role. A previously removed assignment is
// restored rather than duplicated.
func (s *Service) Assign(
	ctx context.Context,
	accountID, roleID int64,
) (*AccountRole, *role.Role, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, nil, err
	}
	r, err := s.roles.Get(ctx, roleID)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.engine.ListWhere(ctx, lifecycle.Any, pair(accountID, roleID))
	if err != nil {
		return nil, nil, err
	}

	for _, ar := range existing {
		if ar.DeletedAt == nil {
			return nil, nil, core.ConflictError("account already has this role")
		}
	}

	if len(existing) > 0 {
		restored, err := s.engine.Restore(ctx, existing[0].ID)
		if err != nil {
			return nil, nil, err
		}
		return restored, r, nil
	}

	created, err := s.engine.Create(ctx, &AccountRole{
		AccountID: accountID,
		RoleID:    roleID,
	})
	if err != nil {
		return nil, nil, err
	}
	return created, r, nil
}

func (s *Service) Remove(ctx context.Context, accountID, roleID int64) error {
	ar, err := s.engine.GetActiveBy(ctx, pair(accountID, roleID))
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundMessage("account does not have this role")
	}
	if err != nil {
		return err
	}
	return s.engine.SoftDelete(ctx, ar.ID)
}

// Roles lists the active roles of an account. Assignments whose role is
// trashed or gone are skipped.
func (s *Service) Roles(ctx context.Context, accountID int64) ([]*role.Role, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}
	return s.activeRoles(ctx, accountID)
}

// RoleNames is the role set carried by an authenticated principal.
func (s *Service) RoleNames(ctx context.Context, accountID int64) ([]string, error) {
	roles, err := s.activeRoles(ctx, accountID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *Service) activeRoles(ctx context.Context, accountID int64) ([]*role.Role, error) {
	assignments, err := s.engine.ListActiveWhere(ctx, map[string]any{
		"account_id": accountID,
	})
	if err != nil {
		return nil, err
	}

	roles := make([]*role.Role, 0, len(assignments))
	for _, ar := range assignments {
		r, found, err := lifecycle.Resolve(ctx, ar.RoleID, s.roles.Get)
		if err != nil {
			return nil, err
		}
		if found {
			roles = append(roles, r)
		}
	}
	return roles, nil
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

func pair(accountID, roleID int64) map[string]any {
	return map[string]any{"account_id": accountID, "role_id": roleID}
}

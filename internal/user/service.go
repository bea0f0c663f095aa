// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"

	"github.com/carterperez-dev/kixi-backend/internal/account"
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type AccountFinder interface {
	Get(ctx context.Context, id int64) (*account.Account, error)
}

type Service struct {
	engine   *lifecycle.Engine[*User, int64]
	accounts AccountFinder
}

func NewService(st Store, accounts AccountFinder, opts lifecycle.Options) *Service {
	return &Service{
		engine: lifecycle.New(lifecycle.Config[*User, int64]{
			Entity: "user",
			Store:  st,
		}, opts),
		accounts: accounts,
	}
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.engine.ListActive(ctx)
}

func (s *Service) ListTrashed(ctx context.Context) ([]*User, error) {
	return s.engine.ListTrashed(ctx)
}

func (s *Service) ListByAccount(ctx context.Context, accountID int64) ([]*User, error) {
	return s.engine.ListActiveWhere(ctx, map[string]any{"account_id": accountID})
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.engine.GetActive(ctx, id)
}

// GetWithAccount is the strict read: the user and its active account, or
// NotFound when either is missing.
func (s *Service) GetWithAccount(
	ctx context.Context,
	id int64,
) (*User, *account.Account, error) {
	u, err := s.engine.GetActive(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	acct, err := s.accounts.Get(ctx, u.AccountID)
	if errors.Is(err, core.ErrNotFound) {
		return nil, nil, core.NotFoundMessage("account not found")
	}
	if err != nil {
		return nil, nil, err
	}
	return u, acct, nil
}

func (s *Service) Create(ctx context.Context, req UserRequest) (*User, error) {
	req.Normalize()

	if _, err := s.accounts.Get(ctx, req.AccountID); err != nil {
		return nil, err
	}

	return s.engine.Create(ctx, &User{
		AccountID: req.AccountID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Photo:     req.Photo,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UserRequest) (*User, error) {
	req.Normalize()

	return s.engine.Update(ctx, id, func(u *User) error {
		if u.AccountID != req.AccountID {
			if _, err := s.accounts.Get(ctx, req.AccountID); err != nil {
				return err
			}
		}
		u.AccountID = req.AccountID
		u.FirstName = req.FirstName
		u.LastName = req.LastName
		u.Photo = req.Photo
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.engine.SoftDelete(ctx, id)
}

func (s *Service) Restore(ctx context.Context, id int64) (*User, error) {
	return s.engine.Restore(ctx, id)
}

func (s *Service) Purge(ctx context.Context, id int64) error {
	return s.engine.Purge(ctx, id)
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

// Project attaches each user's active account, or null.
func (s *Service) Project(ctx context.Context, users []*User) ([]UserResponse, error) {
	accounts := lifecycle.NewMemo(s.accounts.Get)

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		acct, _, err := accounts.Resolve(ctx, u.AccountID)
		if err != nil {
			return nil, err
		}
		out = append(out, ToUserResponse(u, acct))
	}
	return out, nil
}

func (s *Service) ProjectOne(ctx context.Context, u *User) (UserResponse, error) {
	out, err := s.Project(ctx, []*User{u})
	if err != nil {
		return UserResponse{}, err
	}
	return out[0], nil
}

// AngelaMos | 2026
// service.go

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

type Service struct {
	engine *lifecycle.Engine[*Account, int64]
	hasher *core.PasswordHasher
	logger *slog.Logger
}

func NewService(
	st Store,
	hasher *core.PasswordHasher,
	opts lifecycle.Options,
) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		engine: lifecycle.New(lifecycle.Config[*Account, int64]{
			Entity: "account",
			Store:  st,
			Unique: Spec.Unique,
		}, opts),
		hasher: hasher,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.engine.ListActive(ctx)
}

func (s *Service) ListTrashed(ctx context.Context) ([]*Account, error) {
	return s.engine.ListTrashed(ctx)
}

// ListByActive filters active (not trashed) accounts on their enabled flag.
func (s *Service) ListByActive(ctx context.Context, active bool) ([]*Account, error) {
	return s.engine.ListActiveWhere(ctx, map[string]any{"active": active})
}

func (s *Service) Get(ctx context.Context, id int64) (*Account, error) {
	return s.engine.GetActive(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*Account, error) {
	return s.engine.GetActiveBy(ctx, map[string]any{
		"username": strings.TrimSpace(username),
	})
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return s.engine.GetActiveBy(ctx, map[string]any{
		"email": strings.ToLower(strings.TrimSpace(email)),
	})
}

func (s *Service) Create(ctx context.Context, req AccountRequest) (*Account, error) {
	req.Normalize()

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, core.UnexpectedError(fmt.Errorf("hash password: %w", err))
	}

	return s.engine.Create(ctx, &Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Active:       true,
	})
}

// Update replaces username, email and password. The password is always
// re-hashed.
func (s *Service) Update(
	ctx context.Context,
	id int64,
	req AccountRequest,
) (*Account, error) {
	req.Normalize()

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, core.UnexpectedError(fmt.Errorf("hash password: %w", err))
	}

	return s.engine.Update(ctx, id, func(a *Account) error {
		a.Username = req.Username
		a.Email = req.Email
		a.PasswordHash = hash
		return nil
	})
}

// RecordLogin stamps last_login on an enabled account.
func (s *Service) RecordLogin(ctx context.Context, id int64) (*Account, error) {
	return s.engine.Update(ctx, id, func(a *Account) error {
		if !a.Active {
			return core.ForbiddenError("account is disabled")
		}
		now := s.engine.Now()
		a.LastLogin = &now
		return nil
	})
}

// Authenticate resolves login as a username, then as an email, and checks
// password. Unknown accounts and wrong passwords are indistinguishable.
func (s *Service) Authenticate(
	ctx context.Context,
	login, password string,
) (*Account, error) {
	acct, err := s.findLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	encoded := ""
	if acct != nil {
		encoded = acct.PasswordHash
	}

	valid, rehash, err := s.hasher.Verify(password, encoded)
	if err != nil {
		return nil, core.UnexpectedError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return nil, core.UnauthorizedError("invalid credentials")
	}

	if !acct.Active {
		return nil, core.ForbiddenError("account is disabled")
	}

	if rehash != "" {
		updated, err := s.engine.Update(ctx, acct.ID, func(a *Account) error {
			a.PasswordHash = rehash
			return nil
		})
		if err == nil {
			return updated, nil
		}
		s.logger.WarnContext(ctx, "password rehash failed",
			"account_id", acct.ID,
			"error", err,
		)
	}

	return acct, nil
}

func (s *Service) findLogin(ctx context.Context, login string) (*Account, error) {
	acct, err := s.GetByUsername(ctx, login)
	if err == nil {
		return acct, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	acct, err = s.GetByEmail(ctx, login)
	if errors.Is(err, core.ErrNotFound) {
		return nil, nil
	}
	return acct, err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.engine.SoftDelete(ctx, id)
}

func (s *Service) Restore(ctx context.Context, id int64) (*Account, error) {
	return s.engine.Restore(ctx, id)
}

func (s *Service) Purge(ctx context.Context, id int64) error {
	return s.engine.Purge(ctx, id)
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

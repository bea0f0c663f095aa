// AngelaMos | 2026
// service.go

package session

import (
	"context"
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/account"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

const DefaultTTL = 24 * time.Hour

type AccountFinder interface {
	Get(ctx context.Context, id int64) (*account.Account, error)
}

type Service struct {
	engine   *lifecycle.Engine[*Session, int64]
	accounts AccountFinder
	ttl      time.Duration
}

// NewService builds the session service. Sessions created without an
// explicit expiry live for ttl (DefaultTTL when ttl is not positive).
func NewService(
	st Store,
	accounts AccountFinder,
	ttl time.Duration,
	opts lifecycle.Options,
) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		engine: lifecycle.New(lifecycle.Config[*Session, int64]{
			Entity: "session",
			Store:  st,
			Unique: Spec.Unique,
		}, opts),
		accounts: accounts,
		ttl:      ttl,
	}
}

func (s *Service) List(ctx context.Context) ([]*Session, error) {
	return s.engine.ListActive(ctx)
}

func (s *Service) ListTrashed(ctx context.Context) ([]*Session, error) {
	return s.engine.ListTrashed(ctx)
}

func (s *Service) ListByAccount(ctx context.Context, accountID int64) ([]*Session, error) {
	return s.engine.ListActiveWhere(ctx, map[string]any{"account_id": accountID})
}

func (s *Service) Get(ctx context.Context, id int64) (*Session, error) {
	return s.engine.GetActive(ctx, id)
}

func (s *Service) GetByToken(ctx context.Context, token string) (*Session, error) {
	return s.engine.GetActiveBy(ctx, map[string]any{"token": token})
}

func (s *Service) Create(ctx context.Context, req SessionRequest) (*Session, error) {
	req.Normalize()

	if _, err := s.accounts.Get(ctx, req.AccountID); err != nil {
		return nil, err
	}

	now := s.engine.Now()
	expires := now.Add(s.ttl)
	if req.ExpiresAt != nil {
		expires = req.ExpiresAt.UTC()
	}

	return s.engine.Create(ctx, &Session{
		AccountID: req.AccountID,
		Token:     req.Token,
		IPAddress: req.IPAddress,
		ExpiresAt: expires,
		LastUsed:  now,
	})
}

// Update reassigns or refreshes a session. An omitted expiry keeps the
// current one.
func (s *Service) Update(
	ctx context.Context,
	id int64,
	req SessionRequest,
) (*Session, error) {
	req.Normalize()

	if _, err := s.accounts.Get(ctx, req.AccountID); err != nil {
		return nil, err
	}

	return s.engine.Update(ctx, id, func(sess *Session) error {
		sess.AccountID = req.AccountID
		sess.Token = req.Token
		sess.IPAddress = req.IPAddress
		if req.ExpiresAt != nil {
			sess.ExpiresAt = req.ExpiresAt.UTC()
		}
		sess.LastUsed = s.engine.Now()
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.engine.SoftDelete(ctx, id)
}

func (s *Service) Restore(ctx context.Context, id int64) (*Session, error) {
	return s.engine.Restore(ctx, id)
}

func (s *Service) Purge(ctx context.Context, id int64) error {
	return s.engine.Purge(ctx, id)
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

// Project attaches each session's account, or null when the account is
// no longer active.
func (s *Service) Project(ctx context.Context, sessions []*Session) ([]SessionResponse, error) {
	accounts := lifecycle.NewMemo(s.accounts.Get)

	out := make([]SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		acct, _, err := accounts.Resolve(ctx, sess.AccountID)
		if err != nil {
			return nil, err
		}
		out = append(out, ToSessionResponse(sess, acct))
	}
	return out, nil
}

func (s *Service) ProjectOne(ctx context.Context, sess *Session) (SessionResponse, error) {
	out, err := s.Project(ctx, []*Session{sess})
	if err != nil {
		return SessionResponse{}, err
	}
	return out[0], nil
}

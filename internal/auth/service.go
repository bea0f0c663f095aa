// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/kixi-backend/internal/account"
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/middleware"
	"github.com/carterperez-dev/kixi-backend/internal/session"
)

type AccountProvider interface {
	Get(ctx context.Context, id int64) (*account.Account, error)
	Authenticate(ctx context.Context, login, password string) (*account.Account, error)
	RecordLogin(ctx context.Context, id int64) (*account.Account, error)
}

type SessionProvider interface {
	Create(ctx context.Context, req session.SessionRequest) (*session.Session, error)
	GetByToken(ctx context.Context, token string) (*session.Session, error)
	Delete(ctx context.Context, id int64) error
}

type RoleProvider interface {
	RoleNames(ctx context.Context, accountID int64) ([]string, error)
}

// Service issues bearer tokens backed by sessions. A token is only honored
// while its session is active, so trashing the session revokes it.
type Service struct {
	jwt      *JWTManager
	accounts AccountProvider
	sessions SessionProvider
	roles    RoleProvider
}

func NewService(
	jwt *JWTManager,
	accounts AccountProvider,
	sessions SessionProvider,
	roles RoleProvider,
) *Service {
	return &Service{
		jwt:      jwt,
		accounts: accounts,
		sessions: sessions,
		roles:    roles,
	}
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
	ipAddress string,
) (*AuthResponse, error) {
	req.Normalize()

	acct, err := s.accounts.Authenticate(ctx, req.Login, req.Password)
	if err != nil {
		return nil, err
	}

	acct, err = s.accounts.RecordLogin(ctx, acct.ID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		AccountID: acct.ID,
		Username:  acct.Username,
	})
	if err != nil {
		return nil, core.UnexpectedError(fmt.Errorf("create access token: %w", err))
	}

	sess, err := s.sessions.Create(ctx, session.SessionRequest{
		AccountID: acct.ID,
		Token:     token,
		IPAddress: ipAddress,
		ExpiresAt: &expiresAt,
	})
	if err != nil {
		return nil, err
	}

	roles, err := s.roles.RoleNames(ctx, acct.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Account:   account.ToAccountResponse(acct),
		Roles:     roles,
		SessionID: sess.ID,
		Tokens: TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int(s.jwt.ExpiresIn().Seconds()),
			ExpiresAt:   expiresAt,
		},
	}, nil
}

// Authenticate implements middleware.TokenVerifier.
func (s *Service) Authenticate(
	ctx context.Context,
	token string,
) (*middleware.Principal, error) {
	claims, err := s.jwt.VerifyAccessToken(ctx, token)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByToken(ctx, token)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.TokenRevokedError()
	}
	if err != nil {
		return nil, err
	}
	if sess.AccountID != claims.AccountID {
		return nil, core.TokenInvalidError()
	}
	if sess.Expired(time.Now()) {
		return nil, core.TokenExpiredError()
	}

	acct, err := s.accounts.Get(ctx, claims.AccountID)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.TokenRevokedError()
	}
	if err != nil {
		return nil, err
	}
	if !acct.Active {
		return nil, core.ForbiddenError("account is disabled")
	}

	roles, err := s.roles.RoleNames(ctx, acct.ID)
	if err != nil {
		return nil, err
	}

	return &middleware.Principal{
		AccountID: acct.ID,
		SessionID: sess.ID,
		Username:  acct.Username,
		Roles:     roles,
	}, nil
}

func (s *Service) Me(ctx context.Context, p *middleware.Principal) (*MeResponse, error) {
	acct, err := s.accounts.Get(ctx, p.AccountID)
	if err != nil {
		return nil, err
	}

	return &MeResponse{
		Account:   account.ToAccountResponse(acct),
		Roles:     p.Roles,
		SessionID: p.SessionID,
	}, nil
}

// Logout trashes the caller's session. Restoring the session re-enables
// the token until it expires.
func (s *Service) Logout(ctx context.Context, p *middleware.Principal) error {
	return s.sessions.Delete(ctx, p.SessionID)
}

// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/carterperez-dev/kixi-backend/internal/core"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated caller: the account behind a live session.
type Principal struct {
	AccountID int64
	SessionID int64
	Username  string
	Roles     []string
}

func (p *Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// TokenVerifier resolves a bearer token into a principal. Implementations
// must reject tokens whose session is no longer active.
type TokenVerifier interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}

func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(w, r,
					core.UnauthorizedError("missing authorization token"),
				)
				return
			}

			principal, err := verifier.Authenticate(r.Context(), token)
			if err != nil {
				handleAuthError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := GetPrincipal(r.Context())

			if principal == nil {
				core.JSONError(w, r,
					core.UnauthorizedError("authentication required"),
				)
				return
			}

			if !slices.ContainsFunc(roles, principal.HasRole) {
				core.JSONError(w, r,
					core.ForbiddenError("insufficient permissions"),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

const AdminRole = "ADMIN"

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(AdminRole)(next)
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, r, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, r, core.TokenExpiredError())
	case errors.Is(err, core.ErrTokenRevoked):
		core.JSONError(w, r, core.TokenRevokedError())
	default:
		core.JSONError(w, r, core.TokenInvalidError())
	}
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func GetPrincipal(ctx context.Context) *Principal {
	if p, ok := ctx.Value(principalKey).(*Principal); ok {
		return p
	}
	return nil
}

func GetAccountID(ctx context.Context) int64 {
	if p := GetPrincipal(ctx); p != nil {
		return p.AccountID
	}
	return 0
}

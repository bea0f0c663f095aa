// AngelaMos | 2026
// requestid.go

package middleware

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/carterperez-dev/kixi-backend/internal/core"
)

const RequestIDHeader = "X-Request-ID"

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID propagates a caller supplied X-Request-ID when it is well
// formed and mints a UUID otherwise.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(core.WithRequestID(r.Context(), id)))
	})
}

func GetRequestID(r *http.Request) string {
	return core.RequestIDFromContext(r.Context())
}

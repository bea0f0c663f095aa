// AngelaMos | 2026
// response.go

package core

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const problemContentType = "application/problem+json"

type contextKey string

const requestIDKey contextKey = "request_id"

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// Problem is an RFC 9457 problem details document.
type Problem struct {
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Status    int               `json:"status"`
	Detail    string            `json:"detail"`
	Instance  string            `json:"instance,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// StatusFor maps an error onto its HTTP status and problem slug.
func StatusFor(err error) (int, string) {
	switch Kind(err) {
	case ErrNotFound:
		return http.StatusNotFound, "not-found"
	case ErrConflict:
		return http.StatusConflict, "conflict"
	case ErrInvalidInput:
		return http.StatusBadRequest, "invalid-input"
	case ErrInvalidState:
		return http.StatusConflict, "invalid-state"
	case ErrUnauthorized:
		return http.StatusUnauthorized, "unauthorized"
	case ErrForbidden:
		return http.StatusForbidden, "forbidden"
	default:
		return http.StatusInternalServerError, "unexpected"
	}
}

// JSONError renders err as a problem document. Unclassified errors are
// logged and answered with a generic 500 so internals never leak.
func JSONError(w http.ResponseWriter, r *http.Request, err error) {
	status, slug := StatusFor(err)

	problem := Problem{
		Type:   "/problems/" + slug,
		Title:  http.StatusText(status),
		Status: status,
		Detail: "an unexpected error occurred",
	}
	if r != nil {
		problem.Instance = r.URL.Path
		problem.RequestID = RequestIDFromContext(r.Context())
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"path", problem.Instance,
			"request_id", problem.RequestID,
		)
	} else if appErr, ok := AsAppError(err); ok {
		problem.Detail = appErr.Message
		problem.Errors = appErr.Fields
	} else {
		problem.Detail = err.Error()
	}

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(problem)
}

// NewValidator returns a validator that reports fields by their JSON name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError converts validator output into an InvalidInput error
// whose Fields name each failing field and rule.
func ValidationError(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return InvalidInputError("validation failed")
	}

	fields := make(map[string]string, len(verrs))
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
		parts = append(parts, fe.Field()+" failed "+fe.Tag())
	}

	return &AppError{
		Kind:    ErrInvalidInput,
		Message: "validation failed: " + strings.Join(parts, ", "),
		Fields:  fields,
	}
}

// Normalizer is implemented by requests that canonicalize their fields
// (trimming, case folding) before validation.
type Normalizer interface {
	Normalize()
}

// DecodeAndValidate reads a JSON body into dst, normalizes it and
// validates it.
func DecodeAndValidate(r *http.Request, v *validator.Validate, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return InvalidInputError("invalid request body")
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	if err := v.Struct(dst); err != nil {
		return ValidationError(err)
	}
	return nil
}

// ParseID reads a positive integer path parameter.
func ParseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, InvalidInputError(name + " must be a positive integer")
	}
	return id, nil
}

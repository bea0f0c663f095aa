// AngelaMos | 2026
// options.go

package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/kixi-backend/internal/core"
)

// Recorder receives one observation per engine operation.
type Recorder interface {
	ObserveOperation(entity, op, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, string, string, time.Duration) {}

// RetryPolicy retries read paths on infrastructure failures. Domain errors
// and writes are never retried.
type RetryPolicy struct {
	Attempts        int
	InitialInterval time.Duration
}

func (p RetryPolicy) do(ctx context.Context, fn func() error) error {
	if p.Attempts <= 1 {
		return fn()
	}

	eb := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		eb.InitialInterval = p.InitialInterval
	}
	b := backoff.WithContext(
		backoff.WithMaxRetries(eb, uint64(p.Attempts-1)), //nolint:gosec // attempts validated positive
		ctx,
	)

	return backoff.Retry(func() error {
		err := fn()
		if err != nil && core.IsDomain(err) {
			return backoff.Permanent(err)
		}
		return err
	}, b)
}

// Options carries the cross cutting concerns injected into every engine.
type Options struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Recorder Recorder
	Retry    RetryPolicy
	Now      func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Tracer == nil {
		o.Tracer = otel.Tracer("lifecycle")
	}
	if o.Recorder == nil {
		o.Recorder = nopRecorder{}
	}
	if o.Now == nil {
		o.Now = func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		}
	}
	return o
}

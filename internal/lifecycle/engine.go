// AngelaMos | 2026
// engine.go

package lifecycle

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/kixi-backend/internal/core"
)

type Config[T Record[K], K cmp.Ordered] struct {
	// Entity is the lower case name used in messages, logs and metrics.
	Entity string
	Store  Store[T, K]
	Unique []Unique[T]
	// NaturalKey marks caller assigned keys. Such a key is an identity and
	// stays reserved while its row is trashed.
	NaturalKey bool
}

// Engine implements the Active / Trashed / Destroyed state machine
// shared by every entity:
//
//	Active --SoftDelete--> Trashed --Purge--> Destroyed
//	   ^                      |
//	   +-------Restore--------+
type Engine[T Record[K], K cmp.Ordered] struct {
	cfg  Config[T, K]
	opts Options
}

func New[T Record[K], K cmp.Ordered](cfg Config[T, K], opts Options) *Engine[T, K] {
	return &Engine[T, K]{cfg: cfg, opts: opts.withDefaults()}
}

func (e *Engine[T, K]) Entity() string {
	return e.cfg.Entity
}

// Now is the engine clock; services use it for their own timestamps so
// tests can pin time in one place.
func (e *Engine[T, K]) Now() time.Time {
	return e.opts.Now()
}

func (e *Engine[T, K]) ListActive(ctx context.Context) ([]T, error) {
	return e.list(ctx, "list_active", Query{State: Active})
}

func (e *Engine[T, K]) ListTrashed(ctx context.Context) ([]T, error) {
	return e.list(ctx, "list_trashed", Query{State: Trashed})
}

// ListActiveWhere lists active rows whose columns equal the given values.
func (e *Engine[T, K]) ListActiveWhere(
	ctx context.Context,
	where map[string]any,
) ([]T, error) {
	return e.list(ctx, "list_active", Query{State: Active, Where: where})
}

func (e *Engine[T, K]) ListWhere(
	ctx context.Context,
	state State,
	where map[string]any,
) ([]T, error) {
	return e.list(ctx, "list_"+state.String(), Query{State: state, Where: where})
}

func (e *Engine[T, K]) Count(ctx context.Context, state State) (int, error) {
	rows, err := e.list(ctx, "count", Query{State: state})
	return len(rows), err
}

func (e *Engine[T, K]) list(ctx context.Context, op string, q Query) ([]T, error) {
	var rows []T
	err := e.run(ctx, op, func(ctx context.Context) error {
		return e.opts.Retry.do(ctx, func() error {
			var err error
			rows, err = e.cfg.Store.List(ctx, q)
			if err != nil {
				return e.storeErr(op, nil, err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (e *Engine[T, K]) GetActive(ctx context.Context, key K) (T, error) {
	return e.Lookup(ctx, key, Active)
}

// Lookup fetches a row in the given state. Relationship hydration uses Any
// where a trashed parent should still be shown.
func (e *Engine[T, K]) Lookup(ctx context.Context, key K, state State) (T, error) {
	var rec T
	err := e.run(ctx, "get", func(ctx context.Context) error {
		return e.opts.Retry.do(ctx, func() error {
			var err error
			rec, err = e.cfg.Store.Get(ctx, key, state)
			if err != nil {
				return e.storeErr("get", key, err)
			}
			return nil
		})
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// GetActiveBy returns the first active row matching where.
func (e *Engine[T, K]) GetActiveBy(
	ctx context.Context,
	where map[string]any,
) (T, error) {
	var zero T

	rows, err := e.list(ctx, "get_by", Query{State: Active, Where: where})
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, core.NotFoundMessage(e.cfg.Entity + " not found")
	}
	return rows[0], nil
}

func (e *Engine[T, K]) Create(ctx context.Context, rec T) (T, error) {
	err := e.run(ctx, "create", func(ctx context.Context) error {
		now := e.opts.Now()
		ts := rec.Stamps()
		ts.CreatedAt = now
		ts.UpdatedAt = now
		ts.DeletedAt = nil

		if e.cfg.NaturalKey {
			_, err := e.cfg.Store.Get(ctx, rec.Key(), Any)
			if err == nil {
				return core.ConflictError(
					fmt.Sprintf("%s %v already exists", e.cfg.Entity, rec.Key()),
				)
			}
			if !errors.Is(err, core.ErrNotFound) {
				return e.storeErr("create", rec.Key(), err)
			}
		}

		if err := e.guard(ctx, rec, nil, e.cfg.Unique); err != nil {
			return err
		}

		if err := e.cfg.Store.Insert(ctx, rec); err != nil {
			return e.storeErr("create", rec.Key(), err)
		}

		e.logTransition(ctx, "created", rec.Key())
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update loads the active row, lets apply mutate it, then re-checks only
// the unique constraints whose values moved. apply may return any domain
// error to abort.
func (e *Engine[T, K]) Update(
	ctx context.Context,
	key K,
	apply func(T) error,
) (T, error) {
	var rec T
	err := e.run(ctx, "update", func(ctx context.Context) error {
		var err error
		rec, err = e.cfg.Store.Get(ctx, key, Active)
		if err != nil {
			return e.storeErr("update", key, err)
		}

		ts := rec.Stamps()
		createdAt := ts.CreatedAt

		before := make([]snapshot, len(e.cfg.Unique))
		for i, u := range e.cfg.Unique {
			before[i] = u.snapshot(rec)
		}

		if err := apply(rec); err != nil {
			return e.classify("update", key, err)
		}

		if rec.Key() != key {
			return core.InvalidInputError(e.cfg.Entity + " key cannot be changed")
		}

		ts = rec.Stamps()
		ts.CreatedAt = createdAt
		ts.DeletedAt = nil

		var moved []Unique[T]
		for i, u := range e.cfg.Unique {
			if before[i].changed(u.snapshot(rec)) {
				moved = append(moved, u)
			}
		}
		if err := e.guard(ctx, rec, &key, moved); err != nil {
			return err
		}

		ts.UpdatedAt = e.opts.Now()
		if err := e.cfg.Store.Update(ctx, rec); err != nil {
			return e.storeErr("update", key, err)
		}

		e.logTransition(ctx, "updated", key)
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// SoftDelete moves an active row to the trash. Deleting a row that is
// already trashed is NotFound, not a no-op.
func (e *Engine[T, K]) SoftDelete(ctx context.Context, key K) error {
	return e.run(ctx, "soft_delete", func(ctx context.Context) error {
		rec, err := e.cfg.Store.Get(ctx, key, Active)
		if err != nil {
			return e.storeErr("soft_delete", key, err)
		}

		now := e.opts.Now()
		ts := rec.Stamps()
		ts.DeletedAt = &now
		ts.UpdatedAt = now

		if err := e.cfg.Store.Update(ctx, rec); err != nil {
			return e.storeErr("soft_delete", key, err)
		}

		e.logTransition(ctx, "soft deleted", key)
		return nil
	})
}

// Restore brings a trashed row back, provided no active row claimed one
// of its unique values in the meantime.
func (e *Engine[T, K]) Restore(ctx context.Context, key K) (T, error) {
	var rec T
	err := e.run(ctx, "restore", func(ctx context.Context) error {
		var err error
		rec, err = e.cfg.Store.Get(ctx, key, Any)
		if err != nil {
			return e.storeErr("restore", key, err)
		}

		ts := rec.Stamps()
		if ts.DeletedAt == nil {
			return core.InvalidStateError(
				fmt.Sprintf("%s %v is not deleted", e.cfg.Entity, key),
			)
		}

		ts.DeletedAt = nil
		if err := e.guard(ctx, rec, &key, e.cfg.Unique); err != nil {
			return err
		}

		ts.UpdatedAt = e.opts.Now()
		if err := e.cfg.Store.Update(ctx, rec); err != nil {
			return e.storeErr("restore", key, err)
		}

		e.logTransition(ctx, "restored", key)
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Purge permanently removes a trashed row.
func (e *Engine[T, K]) Purge(ctx context.Context, key K) error {
	return e.run(ctx, "purge", func(ctx context.Context) error {
		rec, err := e.cfg.Store.Get(ctx, key, Any)
		if err != nil {
			return e.storeErr("purge", key, err)
		}

		if rec.Stamps().DeletedAt == nil {
			return core.InvalidStateError(fmt.Sprintf(
				"%s %v is active; only trashed records can be purged",
				e.cfg.Entity,
				key,
			))
		}

		if err := e.cfg.Store.Delete(ctx, key); err != nil {
			return e.storeErr("purge", key, err)
		}

		e.logTransition(ctx, "purged", key)
		return nil
	})
}

func (e *Engine[T, K]) guard(
	ctx context.Context,
	rec T,
	self *K,
	constraints []Unique[T],
) error {
	for _, u := range constraints {
		if !u.Applies(rec) {
			continue
		}

		rows, err := e.cfg.Store.List(ctx, Query{State: Active, Where: u.Where(rec)})
		if err != nil {
			return e.storeErr("unique_check", nil, err)
		}

		for _, row := range rows {
			if self != nil && row.Key() == *self {
				continue
			}
			return core.ConflictError(u.Message)
		}
	}
	return nil
}

func (e *Engine[T, K]) storeErr(op string, key any, err error) error {
	switch {
	case core.IsAppError(err):
		return err
	case errors.Is(err, core.ErrNotFound):
		return core.NotFoundError(e.cfg.Entity, key)
	case errors.Is(err, core.ErrDuplicateKey):
		return &core.AppError{
			Kind:    core.ErrConflict,
			Message: e.duplicateMessage(),
			Err:     err,
		}
	case errors.Is(err, core.ErrForeignKey) && op == "purge":
		return &core.AppError{
			Kind:    core.ErrConflict,
			Message: fmt.Sprintf("%s %v is still referenced", e.cfg.Entity, key),
			Err:     err,
		}
	case errors.Is(err, core.ErrForeignKey):
		return &core.AppError{
			Kind:    core.ErrInvalidInput,
			Message: e.cfg.Entity + " references a missing record",
			Err:     err,
		}
	default:
		return core.UnexpectedError(fmt.Errorf("%s %s: %w", e.cfg.Entity, op, err))
	}
}

func (e *Engine[T, K]) classify(op string, key any, err error) error {
	if core.IsDomain(err) {
		return err
	}
	return e.storeErr(op, key, err)
}

func (e *Engine[T, K]) duplicateMessage() string {
	if len(e.cfg.Unique) == 1 {
		return e.cfg.Unique[0].Message
	}
	return e.cfg.Entity + " conflicts with an existing record"
}

func (e *Engine[T, K]) run(
	ctx context.Context,
	op string,
	fn func(context.Context) error,
) error {
	ctx, span := e.opts.Tracer.Start(ctx, e.cfg.Entity+"."+op,
		trace.WithAttributes(
			attribute.String("lifecycle.entity", e.cfg.Entity),
			attribute.String("lifecycle.op", op),
		),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	e.opts.Recorder.ObserveOperation(e.cfg.Entity, op, Outcome(err), time.Since(start))

	if err != nil {
		span.RecordError(err)
		if !core.IsDomain(err) {
			span.SetStatus(codes.Error, err.Error())
			e.opts.Logger.ErrorContext(ctx, "lifecycle operation failed",
				"entity", e.cfg.Entity,
				"op", op,
				"error", err,
			)
		}
	}

	return err
}

func (e *Engine[T, K]) logTransition(ctx context.Context, what string, key any) {
	e.opts.Logger.InfoContext(ctx, e.cfg.Entity+" "+what,
		"entity", e.cfg.Entity,
		"key", key,
	)
}

// Outcome labels err for metrics.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	switch core.Kind(err) {
	case core.ErrNotFound:
		return "not_found"
	case core.ErrConflict:
		return "conflict"
	case core.ErrInvalidInput:
		return "invalid_input"
	case core.ErrInvalidState:
		return "invalid_state"
	case core.ErrUnauthorized:
		return "unauthorized"
	case core.ErrForbidden:
		return "forbidden"
	default:
		return "error"
	}
}

// AngelaMos | 2026
// table.go

package sqlstore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

// Spec describes one entity table.
type Spec struct {
	Table string
	Key   string
	// Generated keys are assigned by the database and read back with
	// RETURNING.
	Generated bool
	// Columns lists every column except the key, timestamps included.
	Columns []string
}

// Table is a generic sqlx backed store. Queries are written with ?
// placeholders and rebound for the connected driver, so the same table
// serves PostgreSQL and SQLite.
type Table[T lifecycle.Record[K], K cmp.Ordered] struct {
	db      core.DBTX
	spec    Spec
	columns string
}

func NewTable[T lifecycle.Record[K], K cmp.Ordered](
	db core.DBTX,
	spec Spec,
) *Table[T, K] {
	cols := append([]string{spec.Key}, spec.Columns...)
	return &Table[T, K]{
		db:      db,
		spec:    spec,
		columns: strings.Join(cols, ", "),
	}
}

func (t *Table[T, K]) Get(
	ctx context.Context,
	key K,
	state lifecycle.State,
) (T, error) {
	var zero T

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = ?%s",
		t.columns, t.spec.Table, t.spec.Key, stateClause(state, " AND "),
	)

	// Select into a slice: sqlx cannot Get into a pointer typed parameter.
	var rows []T
	if err := t.db.SelectContext(ctx, &rows, t.db.Rebind(query), key); err != nil {
		return zero, fmt.Errorf("get %s: %w", t.spec.Table, translate(err))
	}
	if len(rows) == 0 {
		return zero, fmt.Errorf("get %s %v: %w", t.spec.Table, key, core.ErrNotFound)
	}

	return rows[0], nil
}

func (t *Table[T, K]) List(ctx context.Context, q lifecycle.Query) ([]T, error) {
	var conditions []string
	var args []any

	if c := stateClause(q.State, ""); c != "" {
		conditions = append(conditions, c)
	}

	cols := make([]string, 0, len(q.Where))
	for col := range q.Where {
		cols = append(cols, col)
	}
	slices.Sort(cols)

	for _, col := range cols {
		val := q.Where[col]
		if val == nil {
			conditions = append(conditions, col+" IS NULL")
			continue
		}
		conditions = append(conditions, col+" = ?")
		args = append(args, val)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", t.columns, t.spec.Table)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + t.spec.Key

	var rows []T
	if err := t.db.SelectContext(ctx, &rows, t.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.spec.Table, translate(err))
	}

	return rows, nil
}

func (t *Table[T, K]) Insert(ctx context.Context, rec T) error {
	cols := t.spec.Columns
	if !t.spec.Generated {
		cols = append([]string{t.spec.Key}, cols...)
	}

	args := make([]any, 0, len(cols))
	for _, col := range cols {
		args = append(args, columnValue(rec, col))
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		t.spec.Table,
		strings.Join(cols, ", "),
		placeholders(len(cols)),
	)

	if !t.spec.Generated {
		if _, err := t.db.ExecContext(ctx, t.db.Rebind(query), args...); err != nil {
			return fmt.Errorf("insert %s: %w", t.spec.Table, translate(err))
		}
		return nil
	}

	query += " RETURNING " + t.spec.Key
	v := reflect.Indirect(reflect.ValueOf(rec))
	keyField := lifecycle.Mapper.FieldByName(v, t.spec.Key)

	err := t.db.QueryRowxContext(ctx, t.db.Rebind(query), args...).
		Scan(keyField.Addr().Interface())
	if err != nil {
		return fmt.Errorf("insert %s: %w", t.spec.Table, translate(err))
	}

	return nil
}

func (t *Table[T, K]) Update(ctx context.Context, rec T) error {
	sets := make([]string, 0, len(t.spec.Columns))
	args := make([]any, 0, len(t.spec.Columns)+1)
	for _, col := range t.spec.Columns {
		sets = append(sets, col+" = ?")
		args = append(args, columnValue(rec, col))
	}
	args = append(args, rec.Key())

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = ?",
		t.spec.Table, strings.Join(sets, ", "), t.spec.Key,
	)

	result, err := t.db.ExecContext(ctx, t.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.spec.Table, translate(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", t.spec.Table, err)
	}
	if rows == 0 {
		return fmt.Errorf("update %s %v: %w", t.spec.Table, rec.Key(), core.ErrNotFound)
	}

	return nil
}

func (t *Table[T, K]) Delete(ctx context.Context, key K) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.spec.Table, t.spec.Key)

	result, err := t.db.ExecContext(ctx, t.db.Rebind(query), key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.spec.Table, translate(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.spec.Table, err)
	}
	if rows == 0 {
		return fmt.Errorf("delete %s %v: %w", t.spec.Table, key, core.ErrNotFound)
	}

	return nil
}

func stateClause(state lifecycle.State, prefix string) string {
	switch state {
	case lifecycle.Active:
		return prefix + "deleted_at IS NULL"
	case lifecycle.Trashed:
		return prefix + "deleted_at IS NOT NULL"
	default:
		return ""
	}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// translate maps driver constraint errors onto core sentinels.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", core.ErrDuplicateKey, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", core.ErrForeignKey, pgErr.ConstraintName)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s", core.ErrDuplicateKey, liteErr.Error())
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %s", core.ErrForeignKey, liteErr.Error())
		}
	}

	return err
}

// columnValue is the driver argument for col. Nil pointers become a
// real nil so nullable columns store NULL.
func columnValue(rec any, col string) any {
	val, _ := lifecycle.Column(rec, col)
	return val
}

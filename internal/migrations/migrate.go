// AngelaMos | 2026
// migrate.go

package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/carterperez-dev/kixi-backend/internal/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Up applies every pending migration for the configured driver. It opens
// its own connection and closes it when done. The memory driver has no
// schema and is a no-op.
func Up(cfg config.DatabaseConfig) (uint, error) {
	dir, url, err := target(cfg)
	if err != nil || dir == "" {
		return 0, err
	}

	src, err := iofs.New(files, dir)
	if err != nil {
		return 0, fmt.Errorf("open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return 0, fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		//nolint:errcheck // close errors after a completed run are not actionable
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read migration version: %w", err)
	}

	return version, nil
}

func target(cfg config.DatabaseConfig) (dir, url string, err error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return "", "", nil
	case config.DriverSQLite:
		return "sqlite", "sqlite://" + strings.TrimPrefix(cfg.URL, "file:"), nil
	case config.DriverPostgres:
		for _, prefix := range []string{"postgres://", "postgresql://"} {
			if rest, ok := strings.CutPrefix(cfg.URL, prefix); ok {
				return "postgres", "pgx5://" + rest, nil
			}
		}
		return "", "", fmt.Errorf("database url must start with postgres://")
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

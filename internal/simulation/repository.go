// AngelaMos | 2026
// repository.go

package simulation

import (
	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type Store = lifecycle.Store[*Simulation, int64]

var Spec = store.Spec[*Simulation]{
	Table:     "simulations",
	Key:       "id",
	Generated: true,
	Columns: store.Columns(
		"account_id",
		"statement_id",
		"school_year_id",
		"started_at",
		"finished_at",
		"time_spent_seconds",
		"final_score",
		"status",
	),
	Unique: []lifecycle.Unique[*Simulation]{{
		Name:    "in_progress",
		Columns: []string{"account_id", "statement_id"},
		Scope:   map[string]any{"status": string(StatusInProgress)},
		Message: "there is already an active simulation for this account and statement",
	}},
}

func NewStore(db *core.Database) Store {
	return store.Open[*Simulation, int64](db, Spec)
}

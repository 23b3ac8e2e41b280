package ports

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for piece custody
// records. Implementations must hold the conservation invariant: at most one
// row per (unit, area), every row positive, rows summing to the unit's
// total.
type LedgerRepository interface {
	// Add inserts a custody record. Fails if the (unit, area) pair already
	// has one.
	Add(ctx context.Context, record *ledger.Record) error

	// SetPieces updates the piece count of an existing record. A count of
	// zero deletes the row instead.
	SetPieces(ctx context.Context, unitID kernel.UUID, area kernel.Area, pieces int) error

	// GetDistribution loads every custody record of a unit.
	GetDistribution(ctx context.Context, unitID kernel.UUID) (*ledger.Distribution, error)
}

// Package ports defines repository and outbound interfaces for the piece
// tracking domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/unit"
)

// UnitFilter narrows unit listings. Zero-value fields are ignored.
type UnitFilter struct {
	// Kind limits results to one unit kind.
	Kind unit.Kind

	// Statuses limits results to the given statuses.
	Statuses []unit.Status

	// IncludeDeleted also returns soft-deleted units. Off by default.
	IncludeDeleted bool
}

// UnitRepository defines the persistence contract for unit aggregates.
type UnitRepository interface {
	// Add persists a new unit aggregate to storage.
	// The unit must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *unit.Unit) error

	// Update persists changes to an existing unit aggregate.
	Update(ctx context.Context, aggregate *unit.Unit) error

	// Get retrieves a unit aggregate by its unique identifier.
	// Soft-deleted units are returned too; callers decide whether a deleted
	// unit is acceptable for the operation.
	Get(ctx context.Context, id kernel.UUID) (*unit.Unit, error)

	// GetByFolio retrieves a unit by its human-facing folio code.
	GetByFolio(ctx context.Context, folio string) (*unit.Unit, error)

	// GetAll retrieves units matching the filter, newest first.
	GetAll(ctx context.Context, filter UnitFilter) ([]*unit.Unit, error)

	// GetAllHeldByArea retrieves non-deleted units for which the given area
	// holds at least one piece.
	GetAllHeldByArea(ctx context.Context, area kernel.Area) ([]*unit.Unit, error)
}

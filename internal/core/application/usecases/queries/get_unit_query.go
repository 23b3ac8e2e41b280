// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetUnitQueryIsNotConstructed = errors.New(
		"GetUnitQuery must be created via NewGetUnitQuery constructor",
	)
)

// GetUnitQuery retrieves one unit together with its piece distribution.
//
// Example:
//
//	query, err := queries.NewGetUnitQuery(unitID)
//	if err != nil {
//	    return err
//	}
//
//	unit, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve unit: %w", err)
//	}
//
//	fmt.Printf("%s: %d pieces\n", unit.Folio, unit.TotalPieces)
type GetUnitQuery struct {
	unitID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnitQuery creates a query to retrieve one unit by identifier.
func NewGetUnitQuery(unitID kernel.UUID) (GetUnitQuery, error) {
	if err := unitID.Validate(); err != nil {
		return GetUnitQuery{}, err
	}
	return GetUnitQuery{unitID: unitID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnitQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitQueryIsNotConstructed)
}

// UnitID returns the identifier of the requested unit.
func (q GetUnitQuery) UnitID() kernel.UUID {
	return q.unitID
}

// AreaPiecesResponse is one row of a unit's piece distribution.
type AreaPiecesResponse struct {
	Area      kernel.Area
	Pieces    int
	UpdatedAt time.Time
}

// GetUnitQueryResponse represents a unit in the read model, including where
// its pieces currently sit. CurrentArea is nil while custody is split.
type GetUnitQueryResponse struct {
	ID           kernel.UUID
	Kind         string
	Folio        string
	TotalPieces  int
	Status       string
	CurrentArea  *kernel.Area
	CreatedBy    kernel.UUID
	CreatedAt    time.Time
	CompletedAt  *time.Time
	Distribution []AreaPiecesResponse
}

package queries

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetUnitHistoryQueryIsNotConstructed = errors.New(
		"GetUnitHistoryQuery must be created via NewGetUnitHistoryQuery constructor",
	)
)

// GetUnitHistoryQuery retrieves one unit's audit trail in chronological
// order. History is append-only, so this is the full story of the unit.
type GetUnitHistoryQuery struct {
	unitID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnitHistoryQuery creates a query for one unit's history.
func NewGetUnitHistoryQuery(unitID kernel.UUID) (GetUnitHistoryQuery, error) {
	if err := unitID.Validate(); err != nil {
		return GetUnitHistoryQuery{}, err
	}
	return GetUnitHistoryQuery{unitID: unitID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnitHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitHistoryQueryIsNotConstructed)
}

// UnitID returns the identifier of the unit whose history is queried.
func (q GetUnitHistoryQuery) UnitID() kernel.UUID {
	return q.unitID
}

// GetUnitHistoryQueryResponse is one audit event. The route fields are set
// only on movement events (transfer proposals and decisions).
type GetUnitHistoryQueryResponse struct {
	ID          kernel.UUID
	Action      string
	Description string
	Actor       kernel.UUID
	FromArea    *kernel.Area
	ToArea      *kernel.Area
	Pieces      *int
	OccurredAt  time.Time
}

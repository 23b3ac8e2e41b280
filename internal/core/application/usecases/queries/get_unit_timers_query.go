package queries

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetUnitTimersQueryIsNotConstructed = errors.New(
		"GetUnitTimersQuery must be created via NewGetUnitTimersQuery constructor",
	)
)

// GetUnitTimersQuery retrieves every time record of one unit, live and
// manual, for the per-area time report.
type GetUnitTimersQuery struct {
	unitID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnitTimersQuery creates a query for one unit's time records.
func NewGetUnitTimersQuery(unitID kernel.UUID) (GetUnitTimersQuery, error) {
	if err := unitID.Validate(); err != nil {
		return GetUnitTimersQuery{}, err
	}
	return GetUnitTimersQuery{unitID: unitID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnitTimersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitTimersQueryIsNotConstructed)
}

// UnitID returns the identifier of the timed unit.
func (q GetUnitTimersQuery) UnitID() kernel.UUID {
	return q.unitID
}

// GetUnitTimersQueryResponse is one time record. Minutes is nil while a
// live timer is still running.
type GetUnitTimersQueryResponse struct {
	Area      kernel.Area
	Manual    bool
	StartedAt time.Time
	StoppedAt *time.Time
	Minutes   *int
}

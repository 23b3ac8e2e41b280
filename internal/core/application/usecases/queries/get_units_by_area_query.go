package queries

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetUnitsByAreaQueryIsNotConstructed = errors.New(
		"GetUnitsByAreaQuery must be created via NewGetUnitsByAreaQuery constructor",
	)
)

// GetUnitsByAreaQuery retrieves every open unit whose pieces sit, fully or
// partly, in one production area. This is the floor view: what an area is
// holding right now.
type GetUnitsByAreaQuery struct {
	area kernel.Area

	guard guard.ConstructorGuard
}

// NewGetUnitsByAreaQuery creates a query for one area's workload.
func NewGetUnitsByAreaQuery(area kernel.Area) (GetUnitsByAreaQuery, error) {
	if err := area.Validate(); err != nil {
		return GetUnitsByAreaQuery{}, err
	}
	return GetUnitsByAreaQuery{area: area, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnitsByAreaQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitsByAreaQueryIsNotConstructed)
}

// Area returns the queried area.
func (q GetUnitsByAreaQuery) Area() kernel.Area {
	return q.area
}

// GetUnitsByAreaQueryResponse is one unit held by the queried area.
// HeldPieces is what this area holds; TotalPieces is the whole unit.
type GetUnitsByAreaQueryResponse struct {
	ID          kernel.UUID
	Kind        string
	Folio       string
	TotalPieces int
	HeldPieces  int
	Status      string
	CreatedAt   time.Time
}

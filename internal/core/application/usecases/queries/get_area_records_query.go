package queries

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetAreaRecordsQueryIsNotConstructed = errors.New(
		"GetAreaRecordsQuery must be created via NewGetAreaRecordsQuery constructor",
	)
)

// GetAreaRecordsQuery retrieves the piece ledger rows of one area: which
// units it holds pieces of and how many.
type GetAreaRecordsQuery struct {
	area kernel.Area

	guard guard.ConstructorGuard
}

// NewGetAreaRecordsQuery creates a query for one area's ledger rows.
func NewGetAreaRecordsQuery(area kernel.Area) (GetAreaRecordsQuery, error) {
	if err := area.Validate(); err != nil {
		return GetAreaRecordsQuery{}, err
	}
	return GetAreaRecordsQuery{area: area, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAreaRecordsQuery) Validate() error {
	return q.guard.Validate(ErrGetAreaRecordsQueryIsNotConstructed)
}

// Area returns the queried area.
func (q GetAreaRecordsQuery) Area() kernel.Area {
	return q.area
}

// GetAreaRecordsQueryResponse is one ledger row of the queried area.
type GetAreaRecordsQueryResponse struct {
	UnitID kernel.UUID
	Folio  string
	Pieces int
}

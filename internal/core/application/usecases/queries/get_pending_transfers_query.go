package queries

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetPendingTransfersQueryIsNotConstructed = errors.New(
		"GetPendingTransfersQuery must be created via NewGetPendingTransfersQuery constructor",
	)
)

// GetPendingTransfersQuery retrieves the transfers awaiting one area's
// decision. This is the destination's inbox: everything listed here blocks
// pieces at the source until accepted or rejected.
type GetPendingTransfersQuery struct {
	area kernel.Area

	guard guard.ConstructorGuard
}

// NewGetPendingTransfersQuery creates a query for one area's pending inbox.
func NewGetPendingTransfersQuery(area kernel.Area) (GetPendingTransfersQuery, error) {
	if err := area.Validate(); err != nil {
		return GetPendingTransfersQuery{}, err
	}
	return GetPendingTransfersQuery{area: area, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingTransfersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingTransfersQueryIsNotConstructed)
}

// Area returns the destination area whose inbox is queried.
func (q GetPendingTransfersQuery) Area() kernel.Area {
	return q.area
}

// GetPendingTransfersQueryResponse is one pending transfer aimed at the
// queried area.
type GetPendingTransfersQueryResponse struct {
	ID        kernel.UUID
	UnitID    kernel.UUID
	Folio     string
	FromArea  kernel.Area
	Pieces    int
	CreatedBy kernel.UUID
	CreatedAt time.Time
}

package ledger

import (
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

// Distribution is the full set of custody records of one unit, loaded in a
// single query. It answers the questions the use cases keep asking: how many
// pieces an area holds, whether the sum matches totalPieces, and whether a
// single area has everything.
type Distribution struct {
	unitID  kernel.UUID
	records []*Record
}

// NewDistribution groups the custody records of one unit. Every record must
// belong to unitID; duplicate areas are rejected.
func NewDistribution(unitID kernel.UUID, records []*Record) (*Distribution, error) {
	if err := unitID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("unitId", err)
	}

	seen := make(map[kernel.Area]struct{}, len(records))
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, err
		}
		if !record.UnitID().IsEqual(unitID) {
			return nil, errs.NewValueIsInvalidError("records")
		}
		if _, dup := seen[record.Area()]; dup {
			return nil, errs.NewValueIsInvalidError("records")
		}
		seen[record.Area()] = struct{}{}
	}

	return &Distribution{unitID: unitID, records: records}, nil
}

// UnitID returns the identifier of the unit the distribution describes.
func (d *Distribution) UnitID() kernel.UUID {
	return d.unitID
}

// Records returns the custody records, one per holding area.
func (d *Distribution) Records() []*Record {
	return d.records
}

// Total returns the sum of pieces across all holding areas. Piece
// conservation requires this to equal the unit's totalPieces at all times.
func (d *Distribution) Total() int {
	total := 0
	for _, record := range d.records {
		total += record.Pieces()
	}
	return total
}

// CustodyOf returns the number of pieces the given area holds, zero when the
// area has no record.
func (d *Distribution) CustodyOf(area kernel.Area) int {
	for _, record := range d.records {
		if record.Area().IsEqual(area) {
			return record.Pieces()
		}
	}
	return 0
}

// Holds reports whether the area has custody of at least pieces.
func (d *Distribution) Holds(area kernel.Area, pieces int) bool {
	return d.CustodyOf(area) >= pieces
}

// SingleHolder returns the one area holding every piece, or nil while
// custody is split across areas. This drives the unit's denormalized
// currentArea.
func (d *Distribution) SingleHolder() *kernel.Area {
	if len(d.records) != 1 {
		return nil
	}
	area := d.records[0].Area()
	return &area
}

package ledger

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through the NewRecord factory method.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")
)

// Record states how many pieces of a unit a single area currently holds.
// At most one record exists per (unit, area) pair, every record holds a
// positive count, and the counts across a unit's records always sum to the
// unit's totalPieces. A record whose count would reach zero is deleted, not
// kept at zero.
type Record struct {
	unitID    kernel.UUID
	area      kernel.Area
	pieces    int
	updatedAt time.Time

	isConstructed bool
}

// NewRecord creates a custody record with validation.
func NewRecord(unitID kernel.UUID, area kernel.Area, pieces int, updatedAt time.Time) (*Record, error) {
	r := &Record{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setUnitID(unitID),
		r.setArea(area),
		r.setPieces(pieces),
	); err != nil {
		return nil, err
	}

	r.updatedAt = updatedAt

	return r, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// UnitID returns the identifier of the unit the record belongs to.
func (r *Record) UnitID() kernel.UUID {
	return r.unitID
}

// Area returns the holding area.
func (r *Record) Area() kernel.Area {
	return r.area
}

// Pieces returns the positive piece count under the area's custody.
func (r *Record) Pieces() int {
	return r.pieces
}

// UpdatedAt returns the last settlement timestamp.
func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Record) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitId", err)
	}
	r.unitID = unitID
	return nil
}

func (r *Record) setArea(area kernel.Area) error {
	if err := area.Validate(); err != nil {
		return err
	}
	r.area = area
	return nil
}

func (r *Record) setPieces(pieces int) error {
	if pieces <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pieces",
			fmt.Errorf("%d is not greater than 0", pieces))
	}
	r.pieces = pieces
	return nil
}

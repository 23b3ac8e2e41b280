package transfer

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrTransferIsNotConstructed is returned when a Transfer instance was not
	// created through the NewTransfer factory method or RestoreTransfer.
	ErrTransferIsNotConstructed = errors.New("Transfer must be created via NewTransfer constructor")
)

// Transfer is a proposal to move a number of pieces of a unit from one area
// to another. It is a two-phase handshake: the source proposes, the
// destination accepts or rejects. Custody changes only on acceptance, and
// the settlement runs inside the same transaction that flips the status.
type Transfer struct {
	id          kernel.UUID
	unitID      kernel.UUID
	fromArea    kernel.Area
	toArea      kernel.Area
	pieces      int
	status      Status
	createdBy   kernel.UUID
	processedBy *kernel.UUID
	createdAt   time.Time
	processedAt *time.Time

	isConstructed bool
}

// NewTransfer creates a pending Transfer with validation.
//
// The source and destination must differ and pieces must be positive. Whether
// the source actually holds that many pieces is checked against the ledger by
// the propose use case, and re-checked at accept time.
func NewTransfer(
	id kernel.UUID,
	unitID kernel.UUID,
	fromArea kernel.Area,
	toArea kernel.Area,
	pieces int,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Transfer, error) {
	t := &Transfer{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setUnitID(unitID),
		t.setRoute(fromArea, toArea),
		t.setPieces(pieces),
		t.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	t.status = StatusPending
	t.createdAt = createdAt

	return t, nil
}

// RestoreTransfer reconstructs a Transfer from persistence.
func RestoreTransfer(
	id kernel.UUID,
	unitID kernel.UUID,
	fromArea kernel.Area,
	toArea kernel.Area,
	pieces int,
	status Status,
	createdBy kernel.UUID,
	processedBy *kernel.UUID,
	createdAt time.Time,
	processedAt *time.Time,
) (*Transfer, error) {
	t := &Transfer{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setUnitID(unitID),
		t.setRoute(fromArea, toArea),
		t.setPieces(pieces),
		t.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	if status != StatusPending && status != StatusAccepted && status != StatusRejected {
		return nil, errs.NewValueIsInvalidError("status")
	}

	t.status = status
	t.processedBy = processedBy
	t.createdAt = createdAt
	t.processedAt = processedAt

	return t, nil
}

// Validate ensures the Transfer instance was properly constructed.
func (t *Transfer) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransferIsNotConstructed
	}
	return nil
}

// ID returns the transfer's unique identifier.
func (t *Transfer) ID() kernel.UUID {
	return t.id
}

// UnitID returns the identifier of the unit whose pieces move.
func (t *Transfer) UnitID() kernel.UUID {
	return t.unitID
}

// FromArea returns the source area.
func (t *Transfer) FromArea() kernel.Area {
	return t.fromArea
}

// ToArea returns the destination area.
func (t *Transfer) ToArea() kernel.Area {
	return t.toArea
}

// Pieces returns the number of pieces proposed to move.
func (t *Transfer) Pieces() int {
	return t.pieces
}

// Status returns the handshake state.
func (t *Transfer) Status() Status {
	return t.status
}

// CreatedBy returns the proposing user's identifier.
func (t *Transfer) CreatedBy() kernel.UUID {
	return t.createdBy
}

// ProcessedBy returns the accepting or rejecting user's identifier, or nil
// while the transfer is pending.
func (t *Transfer) ProcessedBy() *kernel.UUID {
	return t.processedBy
}

// CreatedAt returns the proposal timestamp.
func (t *Transfer) CreatedAt() time.Time {
	return t.createdAt
}

// ProcessedAt returns the decision timestamp, or nil while pending.
func (t *Transfer) ProcessedAt() *time.Time {
	return t.processedAt
}

// IsPartial reports whether the transfer moves fewer pieces than totalPieces.
func (t *Transfer) IsPartial(totalPieces int) bool {
	return t.pieces < totalPieces
}

// Accept marks the transfer accepted and stamps the decider. The caller runs
// the ledger settlement in the same transaction.
func (t *Transfer) Accept(processedBy kernel.UUID, processedAt time.Time) error {
	return t.process(processedBy, processedAt, Status.Accept)
}

// Reject marks the transfer rejected. Custody is untouched.
func (t *Transfer) Reject(processedBy kernel.UUID, processedAt time.Time) error {
	return t.process(processedBy, processedAt, Status.Reject)
}

func (t *Transfer) process(processedBy kernel.UUID, processedAt time.Time, transition func(Status) (Status, error)) error {
	if err := processedBy.Validate(); err != nil {
		return err
	}

	newStatus, err := transition(t.status)
	if err != nil {
		return err
	}

	t.status = newStatus
	t.processedBy = &processedBy
	t.processedAt = &processedAt
	return nil
}

func (t *Transfer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transfer) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitId", err)
	}
	t.unitID = unitID
	return nil
}

func (t *Transfer) setRoute(fromArea, toArea kernel.Area) error {
	if err := errors.Join(fromArea.Validate(), toArea.Validate()); err != nil {
		return err
	}
	if fromArea.IsEqual(toArea) {
		return errs.NewValueIsInvalidErrorWithCause("toArea",
			fmt.Errorf("source and destination are both %s", fromArea))
	}
	t.fromArea = fromArea
	t.toArea = toArea
	return nil
}

func (t *Transfer) setPieces(pieces int) error {
	if pieces <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pieces",
			fmt.Errorf("%d is not greater than 0", pieces))
	}
	t.pieces = pieces
	return nil
}

func (t *Transfer) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	t.createdBy = createdBy
	return nil
}

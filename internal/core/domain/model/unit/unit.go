package unit

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrUnitIsNotConstructed is returned when a Unit instance was not created
	// through the NewUnit factory method or RestoreUnit.
	ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit constructor")
)

// Unit is the aggregate root for a tracked work unit (order or reposition).
//
// Unit follows these invariants:
//   - Must have a valid unique identifier and kind
//   - totalPieces is positive and immutable after creation
//   - currentArea is set only while a single area holds all pieces
//   - Status transitions follow the per-kind state machine in Status
//   - Can only be created through NewUnit or RestoreUnit
//
// The piece distribution itself lives in the ledger; Unit only carries the
// denormalized currentArea, which the transfer protocol keeps in sync.
type Unit struct {
	id          kernel.UUID
	kind        Kind
	folio       string
	totalPieces int
	status      Status
	currentArea *kernel.Area
	createdBy   kernel.UUID
	createdAt   time.Time
	completedAt *time.Time
	approvedBy  *kernel.UUID
	approvedAt  *time.Time

	isConstructed bool
}

// NewUnit creates a new Unit with validation. The unit starts in its kind's
// initial status (Active for orders, Pending for repositions) with all
// pieces in initialArea; the caller seeds the matching ledger record in the
// same transaction.
//
// Returns a ValueIsInvalidError when totalPieces is not positive, the folio
// is empty, or any identifier fails validation.
func NewUnit(
	id kernel.UUID,
	kind Kind,
	folio string,
	totalPieces int,
	initialArea kernel.Area,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Unit, error) {
	u := &Unit{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setKind(kind),
		u.setFolio(folio),
		u.setTotalPieces(totalPieces),
		initialArea.Validate(),
		u.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	u.status = kind.InitialStatus()
	u.createdAt = createdAt
	area := initialArea
	u.currentArea = &area

	return u, nil
}

// RestoreUnit reconstructs a Unit from persistence without running creation
// side effects. The status must be valid for the kind.
func RestoreUnit(
	id kernel.UUID,
	kind Kind,
	folio string,
	totalPieces int,
	status Status,
	currentArea *kernel.Area,
	createdBy kernel.UUID,
	createdAt time.Time,
	completedAt *time.Time,
	approvedBy *kernel.UUID,
	approvedAt *time.Time,
) (*Unit, error) {
	u := &Unit{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setKind(kind),
		u.setFolio(folio),
		u.setTotalPieces(totalPieces),
		status.ValidForKind(kind),
		u.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	if currentArea != nil {
		if err := currentArea.Validate(); err != nil {
			return nil, err
		}
	}

	u.status = status
	u.currentArea = currentArea
	u.createdAt = createdAt
	u.completedAt = completedAt
	u.approvedBy = approvedBy
	u.approvedAt = approvedAt

	return u, nil
}

// Validate ensures the Unit instance was properly constructed.
func (u *Unit) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUnitIsNotConstructed
	}
	return nil
}

// IsEqual compares two units by their unique identifiers.
func (u *Unit) IsEqual(other *Unit) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the unit's unique identifier.
func (u *Unit) ID() kernel.UUID {
	return u.id
}

// Kind returns the unit's kind (order or reposition).
func (u *Unit) Kind() Kind {
	return u.kind
}

// Folio returns the human-facing code of the unit.
func (u *Unit) Folio() string {
	return u.folio
}

// TotalPieces returns the immutable total piece count of the unit.
func (u *Unit) TotalPieces() int {
	return u.totalPieces
}

// Status returns the current lifecycle status.
func (u *Unit) Status() Status {
	return u.status
}

// CurrentArea returns the area holding all pieces of the unit, or nil while
// custody is split across areas.
func (u *Unit) CurrentArea() *kernel.Area {
	return u.currentArea
}

// CreatedBy returns the creating user's identifier.
func (u *Unit) CreatedBy() kernel.UUID {
	return u.createdBy
}

// CreatedAt returns the creation timestamp.
func (u *Unit) CreatedAt() time.Time {
	return u.createdAt
}

// CompletedAt returns the closure timestamp (completion or cancellation),
// or nil while the unit is open.
func (u *Unit) CompletedAt() *time.Time {
	return u.completedAt
}

// ApprovedBy returns the approver's identifier, or nil before the approval
// gate has been resolved.
func (u *Unit) ApprovedBy() *kernel.UUID {
	return u.approvedBy
}

// ApprovedAt returns the approval timestamp, or nil before approval.
func (u *Unit) ApprovedAt() *time.Time {
	return u.approvedAt
}

// Pause puts an active order on hold. Only orders pause; the custody guard
// (pausing area must hold every piece) is enforced by the pause use case
// against the ledger.
func (u *Unit) Pause() error {
	if u.kind != KindOrder {
		return errs.NewInvalidStateErrorWithCause("unit", u.status.String(),
			fmt.Errorf("%s units cannot be paused", u.kind))
	}

	newStatus, err := u.status.Pause()
	if err != nil {
		return err
	}

	u.status = newStatus
	return nil
}

// Resume reactivates a paused order. No custody guard applies.
func (u *Unit) Resume() error {
	newStatus, err := u.status.Resume()
	if err != nil {
		return err
	}

	u.status = newStatus
	return nil
}

// Complete closes the unit and stamps the completion time.
func (u *Unit) Complete(completedAt time.Time) error {
	newStatus, err := u.status.Complete()
	if err != nil {
		return err
	}

	u.status = newStatus
	u.completedAt = &completedAt
	return nil
}

// Approve resolves the approval gate of a pending reposition and stamps
// approver identity and time. Approval never changes currentArea; area
// movement is driven solely by transfers.
func (u *Unit) Approve(approvedBy kernel.UUID, approve bool, approvedAt time.Time) error {
	if u.kind != KindReposition {
		return errs.NewInvalidStateErrorWithCause("unit", u.status.String(),
			fmt.Errorf("%s units have no approval gate", u.kind))
	}
	if err := approvedBy.Validate(); err != nil {
		return err
	}

	newStatus, err := u.status.Approve(approve)
	if err != nil {
		return err
	}

	u.status = newStatus
	u.approvedBy = &approvedBy
	u.approvedAt = &approvedAt
	return nil
}

// BeginProcessing moves an approved reposition to InProcess. Called by the
// transfer protocol when the first transfer is accepted.
func (u *Unit) BeginProcessing() error {
	newStatus, err := u.status.BeginProcessing()
	if err != nil {
		return err
	}

	u.status = newStatus
	return nil
}

// Cancel closes the unit before completion. The closure time is stamped in
// completedAt, matching how the tracking timeline reads closed units.
func (u *Unit) Cancel(canceledAt time.Time) error {
	newStatus, err := u.status.Cancel()
	if err != nil {
		return err
	}

	u.status = newStatus
	u.completedAt = &canceledAt
	return nil
}

// Delete soft-marks the unit as deleted. Ledger, transfer, and history rows
// are retained for audit.
func (u *Unit) Delete() error {
	newStatus, err := u.status.Delete()
	if err != nil {
		return err
	}

	u.status = newStatus
	return nil
}

// SetCurrentArea records the single area holding all pieces. Pass nil while
// custody is split. Only the transfer protocol and unit creation call this.
func (u *Unit) SetCurrentArea(area *kernel.Area) error {
	if area != nil {
		if err := area.Validate(); err != nil {
			return err
		}
	}
	u.currentArea = area
	return nil
}

func (u *Unit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *Unit) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	u.kind = kind
	return nil
}

func (u *Unit) setFolio(folio string) error {
	if folio == "" {
		return errs.NewValueIsRequiredError("folio")
	}
	u.folio = folio
	return nil
}

func (u *Unit) setTotalPieces(totalPieces int) error {
	if totalPieces <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPieces",
			fmt.Errorf("%d is not greater than 0", totalPieces))
	}
	u.totalPieces = totalPieces
	return nil
}

func (u *Unit) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	u.createdBy = createdBy
	return nil
}

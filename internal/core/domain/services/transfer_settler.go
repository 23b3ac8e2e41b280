package services

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"
	"tracker/internal/core/domain/model/transfer"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/pkg/errs"
)

// ErrDistributionCorrupted is returned when a unit's ledger records do not
// sum to its total piece count. This means an earlier settlement broke piece
// conservation and the unit needs manual repair before any further transfer.
var ErrDistributionCorrupted = errors.New("distribution corrupted")

// Settlement is the ledger delta an accepted transfer produces. The accept
// use case applies it to storage inside the same transaction that flipped
// the transfer's status.
type Settlement struct {
	// SourcePieces is the source area's remaining count. Zero means the
	// source row must be deleted, never kept at zero.
	SourcePieces int

	// DestinationPieces is the destination area's new count.
	DestinationPieces int

	// DestinationCreated is true when the destination held nothing before
	// and a new ledger row must be inserted rather than updated.
	DestinationCreated bool

	// SingleHolder is the one area holding every piece after settlement, or
	// nil when custody remains split. Mirrored into the unit's currentArea.
	SingleHolder *kernel.Area
}

// TransferSettler is a domain service that applies an accepted transfer to a
// unit's piece distribution.
//
// Business rules:
//   - The distribution must conserve pieces before settlement
//   - The source must still hold the transferred pieces at accept time, even
//     if it held them when the transfer was proposed
//   - Rows never drop to zero; an emptied source row is deleted
//   - The unit's currentArea tracks the single holder, nil when split
//   - The first accepted transfer moves an approved reposition to InProcess
type TransferSettler struct{}

// NewTransferSettler creates a new TransferSettler instance.
func NewTransferSettler() TransferSettler {
	return TransferSettler{}
}

// Settle accepts a pending transfer and computes the ledger delta.
//
// Settle mutates its arguments: the transfer moves to Accepted with decider
// and time stamped, and the unit's currentArea (and, for approved
// repositions, its status) is updated. The caller persists the transfer, the
// unit, and the returned Settlement atomically.
//
// Returns an InsufficientCustodyError when the source no longer holds the
// pieces, or ErrDistributionCorrupted when the ledger does not sum to the
// unit's total.
func (s TransferSettler) Settle(
	tr *transfer.Transfer,
	u *unit.Unit,
	distribution *ledger.Distribution,
	processedBy kernel.UUID,
	processedAt time.Time,
) (*Settlement, error) {
	if err := errors.Join(tr.Validate(), u.Validate()); err != nil {
		return nil, err
	}
	if !tr.UnitID().IsEqual(u.ID()) || !distribution.UnitID().IsEqual(u.ID()) {
		return nil, errs.NewValueIsInvalidError("unitId")
	}

	if total := distribution.Total(); total != u.TotalPieces() {
		return nil, fmt.Errorf("%w: unit %s ledger sums to %d of %d pieces",
			ErrDistributionCorrupted, u.ID(), total, u.TotalPieces())
	}

	// Custody re-check: proposing reserved nothing, so a competing transfer
	// may have drained the source since then.
	if !distribution.Holds(tr.FromArea(), tr.Pieces()) {
		return nil, errs.NewInsufficientCustodyError(
			tr.FromArea().String(), distribution.CustodyOf(tr.FromArea()), tr.Pieces())
	}

	if err := tr.Accept(processedBy, processedAt); err != nil {
		return nil, err
	}

	settlement := &Settlement{
		SourcePieces:      distribution.CustodyOf(tr.FromArea()) - tr.Pieces(),
		DestinationPieces: distribution.CustodyOf(tr.ToArea()) + tr.Pieces(),
	}
	settlement.DestinationCreated = distribution.CustodyOf(tr.ToArea()) == 0

	if settlement.SourcePieces == 0 && s.onlyRoute(distribution, tr.FromArea(), tr.ToArea()) {
		area := tr.ToArea()
		settlement.SingleHolder = &area
	}

	if err := u.SetCurrentArea(settlement.SingleHolder); err != nil {
		return nil, err
	}

	if u.Kind() == unit.KindReposition && u.Status() == unit.Approved {
		if err := u.BeginProcessing(); err != nil {
			return nil, err
		}
	}

	return settlement, nil
}

// onlyRoute reports whether no third area holds pieces besides the source
// and destination of the transfer. Only then can emptying the source leave
// the destination as single holder.
func (s TransferSettler) onlyRoute(distribution *ledger.Distribution, from, to kernel.Area) bool {
	for _, record := range distribution.Records() {
		if !record.Area().IsEqual(from) && !record.Area().IsEqual(to) {
			return false
		}
	}
	return true
}

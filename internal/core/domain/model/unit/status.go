package unit

import (
	"tracker/internal/pkg/errs"
)

// Status represents the lifecycle state of a work unit.
// It implements a state machine with defined transitions so that units
// follow the correct workflow for their kind.
//
// Order lifecycle:
//
//	Active <──> Paused
//	   │
//	   └──> Completed
//	(any non-terminal ──> Canceled | Deleted)
//
// Reposition lifecycle:
//
//	Pending ──┬──> Approved ──> InProcess ──> Completed
//	          └──> Rejected
//	(any non-terminal ──> Canceled | Deleted)
//
// Status is a value object: transition methods return the new status and
// never mutate the receiver. Any unmodeled transition is rejected with an
// InvalidStateError.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active is the initial status of an order; the unit is moving
	// through production.
	Active

	// Paused indicates production on the unit is on hold. Only the area
	// holding complete custody may pause a unit.
	Paused

	// Completed indicates the unit finished production. Terminal.
	Completed

	// Canceled indicates the unit was closed before completion. Terminal.
	Canceled

	// Deleted marks the unit as administratively removed. The row and its
	// ledger, transfer, and history records are kept for audit. Terminal.
	Deleted

	// Pending is the initial status of a reposition, awaiting the
	// approval gate.
	Pending

	// Approved indicates the reposition passed the approval gate and may
	// begin moving through areas.
	Approved

	// Rejected indicates the reposition failed the approval gate. Terminal.
	Rejected

	// InProcess indicates an approved reposition has started moving
	// between areas.
	InProcess
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Paused:    "paused",
		Completed: "completed",
		Canceled:  "canceled",
		Deleted:   "deleted",
		Pending:   "pending",
		Approved:  "approved",
		Rejected:  "rejected",
		InProcess: "in_process",
	}
}

// getStatusesForKind returns the valid status set per unit kind.
func getStatusesForKind() map[Kind]map[Status]struct{} {
	return map[Kind]map[Status]struct{}{
		KindOrder: {
			Active: {}, Paused: {}, Completed: {}, Canceled: {}, Deleted: {},
		},
		KindReposition: {
			Pending: {}, Approved: {}, Rejected: {}, InProcess: {},
			Completed: {}, Canceled: {}, Deleted: {},
		},
	}
}

// String returns the tag used for persistence and display.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidForKind checks that the status belongs to the given kind's lifecycle.
// Used when reconstructing units from persistence.
func (s Status) ValidForKind(kind Kind) error {
	set, ok := getStatusesForKind()[kind]
	if !ok {
		return errs.NewValueIsInvalidError("kind")
	}
	if _, ok := set[s]; !ok {
		return errs.NewInvalidStateError("unit", s.String())
	}
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case Completed, Canceled, Deleted, Rejected:
		return true
	default:
		return false
	}
}

// Pause transitions the status to Paused.
//
// Valid transitions:
//   - Active -> Paused
//
// The custody guard (the pausing area must hold all pieces) is enforced by
// the pause use case, not here; this method only models the state machine.
func (s Status) Pause() (Status, error) {
	if s != Active {
		return 0, errs.NewInvalidStateError("unit", s.String())
	}
	return Paused, nil
}

// Resume transitions the status back to Active.
//
// Valid transitions:
//   - Paused -> Active
func (s Status) Resume() (Status, error) {
	if s != Paused {
		return 0, errs.NewInvalidStateError("unit", s.String())
	}
	return Active, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Active -> Completed (orders)
//   - Approved -> Completed (repositions completed without area movement)
//   - InProcess -> Completed (repositions)
func (s Status) Complete() (Status, error) {
	if s != Active && s != Approved && s != InProcess {
		return 0, errs.NewInvalidStateError("unit", s.String())
	}
	return Completed, nil
}

// Approve resolves the approval gate of a reposition.
//
// Valid transitions:
//   - Pending -> Approved (approve = true)
//   - Pending -> Rejected (approve = false)
func (s Status) Approve(approve bool) (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("unit", s.String())
	}
	if approve {
		return Approved, nil
	}
	return Rejected, nil
}

// BeginProcessing transitions an approved reposition to InProcess.
// Driven by the first accepted transfer, not by approval itself.
//
// Valid transitions:
//   - Approved -> InProcess
func (s Status) BeginProcessing() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidStateError("unit", s.String())
	}
	return InProcess, nil
}

// Cancel transitions any non-terminal status to Canceled.
func (s Status) Cancel() (Status, error) {
	if s == Unknown || s.IsTerminal() {
		return 0, errs.NewInvalidStateError("unit", s.String())
	}
	return Canceled, nil
}

// Delete soft-marks any non-terminal status as Deleted.
func (s Status) Delete() (Status, error) {
	if s == Unknown || s.IsTerminal() {
		return 0, errs.NewInvalidStateError("unit", s.String())
	}
	return Deleted, nil
}

// StatusFromString parses a persisted status tag.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

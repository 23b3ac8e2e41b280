package transfer

import "tracker/internal/pkg/errs"

// Status represents the handshake state of a transfer.
//
//	Pending ──┬──> Accepted
//	          └──> Rejected
//
// Both outcomes are terminal. Pieces stay under the source area's custody
// until the destination accepts; a rejected transfer moves nothing.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the transfer awaits the destination's decision.
	StatusPending

	// StatusAccepted means the destination took custody of the pieces. Terminal.
	StatusAccepted

	// StatusRejected means the destination declined; custody is unchanged. Terminal.
	StatusRejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
	}
}

// String returns the tag used for persistence and display.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidStateError("transfer", s.String())
	}
	return StatusAccepted, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidStateError("transfer", s.String())
	}
	return StatusRejected, nil
}

// StatusFromString parses a persisted status tag.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

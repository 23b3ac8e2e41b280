package unit

import "tracker/internal/pkg/errs"

// Kind distinguishes the two varieties of work unit the plant tracks:
// production orders and repositions (rework/replacement requests). The two
// kinds share the piece ledger, transfers, timers, and history, but follow
// different lifecycles (see Status).
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindOrder is a regular production order. Starts Active.
	KindOrder

	// KindReposition is a rework/replacement request. Starts Pending and
	// must pass the approval gate before completion.
	KindReposition
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:    "unknown",
		KindOrder:      "order",
		KindReposition: "reposition",
	}
}

// String returns the tag used for persistence and display.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the Kind is one of the modeled varieties.
func (k Kind) Validate() error {
	if k != KindOrder && k != KindReposition {
		return errs.NewValueIsInvalidError("kind")
	}
	return nil
}

// InitialStatus returns the status a freshly created unit of this kind
// carries: Active for orders, Pending for repositions.
func (k Kind) InitialStatus() Status {
	if k == KindReposition {
		return Pending
	}
	return Active
}

// KindFromString parses a persisted kind tag.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == s && kind != KindUnknown {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidError("kind")
}

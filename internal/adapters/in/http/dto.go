package http

import "time"

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateUnitRequest is the body of POST /api/v1/units.
type CreateUnitRequest struct {
	Kind        string `json:"kind"`
	Folio       string `json:"folio"`
	TotalPieces int    `json:"totalPieces"`
	InitialArea string `json:"initialArea"`
}

// ProposeTransferRequest is the body of POST /api/v1/units/:id/transfers.
type ProposeTransferRequest struct {
	FromArea string `json:"fromArea"`
	ToArea   string `json:"toArea"`
	Pieces   int    `json:"pieces"`
}

// ReasonRequest carries the mandatory reason of pause and cancel calls.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// NotesRequest carries the optional notes of approval decisions and
// completion requests.
type NotesRequest struct {
	Notes string `json:"notes"`
}

// ApproveRepositionRequest is the body of POST /api/v1/units/:id/approve.
type ApproveRepositionRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

// ManualTimeRequest is the body of the manual time endpoint. The elapsed
// minutes are computed server-side from the start and end datetimes.
type ManualTimeRequest struct {
	StartDate string `json:"startDate"`
	StartTime string `json:"startTime"`
	EndDate   string `json:"endDate"`
	EndTime   string `json:"endTime"`
}

// SubscriptionRequest registers a browser push subscription.
type SubscriptionRequest struct {
	Endpoint string `json:"endpoint"`
	Area     string `json:"area"`
	P256DH   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

// AreaPieces is one row of a unit's piece distribution.
type AreaPieces struct {
	Area      string    `json:"area"`
	Pieces    int       `json:"pieces"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnitResponse is the detail view of one unit.
type UnitResponse struct {
	ID           string       `json:"id"`
	Kind         string       `json:"kind"`
	Folio        string       `json:"folio"`
	TotalPieces  int          `json:"totalPieces"`
	Status       string       `json:"status"`
	CurrentArea  *string      `json:"currentArea"`
	CreatedAt    time.Time    `json:"createdAt"`
	CompletedAt  *time.Time   `json:"completedAt,omitempty"`
	Distribution []AreaPieces `json:"distribution"`
}

// AreaUnitResponse is one unit in an area's workload listing.
type AreaUnitResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Folio       string    `json:"folio"`
	TotalPieces int       `json:"totalPieces"`
	HeldPieces  int       `json:"heldPieces"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AreaRecordResponse is one ledger row in an area's custody listing.
type AreaRecordResponse struct {
	UnitID string `json:"unitId"`
	Folio  string `json:"folio"`
	Pieces int    `json:"pieces"`
}

// PendingTransferResponse is one entry of a destination's inbox.
type PendingTransferResponse struct {
	ID        string    `json:"id"`
	UnitID    string    `json:"unitId"`
	Folio     string    `json:"folio"`
	FromArea  string    `json:"fromArea"`
	Pieces    int       `json:"pieces"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryEventResponse is one audit event of a unit.
type HistoryEventResponse struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Actor       string    `json:"actor"`
	FromArea    *string   `json:"fromArea,omitempty"`
	ToArea      *string   `json:"toArea,omitempty"`
	Pieces      *int      `json:"pieces,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// TimerResponse is one time record of a unit.
type TimerResponse struct {
	Area      string     `json:"area"`
	Manual    bool       `json:"manual"`
	StartedAt time.Time  `json:"startedAt"`
	StoppedAt *time.Time `json:"stoppedAt,omitempty"`
	Minutes   *int       `json:"minutes,omitempty"`
}

// CreatedResponse returns the identifier of a freshly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

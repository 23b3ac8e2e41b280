package history

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrEventIsNotConstructed is returned when an Event instance was not
	// created through the NewEvent factory method.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")
)

// Action names what happened to a unit. The set is closed so history rows
// stay machine-filterable; the free-form detail goes in Description.
type Action string

const (
	ActionCreated             Action = "created"
	ActionTransferCreated     Action = "transfer_created"
	ActionTransferAccepted    Action = "transfer_accepted"
	ActionTransferRejected    Action = "transfer_rejected"
	ActionPaused              Action = "paused"
	ActionResumed             Action = "resumed"
	ActionCompleted           Action = "completed"
	ActionCanceled            Action = "canceled"
	ActionDeleted             Action = "deleted"
	ActionApproved            Action = "approved"
	ActionRejected            Action = "rejected"
	ActionCompletionRequested Action = "completion_requested"
	ActionTimerStopped        Action = "timer_stopped"
	ActionManualTimeSet       Action = "manual_time_set"
)

// getValidActions returns the closed set of history actions.
func getValidActions() map[Action]struct{} {
	return map[Action]struct{}{
		ActionCreated:             {},
		ActionTransferCreated:     {},
		ActionTransferAccepted:    {},
		ActionTransferRejected:    {},
		ActionPaused:              {},
		ActionResumed:             {},
		ActionCompleted:           {},
		ActionCanceled:            {},
		ActionDeleted:             {},
		ActionApproved:            {},
		ActionRejected:            {},
		ActionCompletionRequested: {},
		ActionTimerStopped:        {},
		ActionManualTimeSet:       {},
	}
}

// Validate checks the Action is one of the modeled history actions.
func (a Action) Validate() error {
	if _, ok := getValidActions()[a]; !ok {
		return errs.NewValueIsInvalidError("action")
	}
	return nil
}

// String returns the persisted tag of the action.
func (a Action) String() string {
	return string(a)
}

// Event is one append-only audit row in a unit's history. Events are never
// updated or deleted; a unit's timeline is its events ordered by occurredAt.
//
// Movement events additionally carry the route and piece count so the
// timeline can be filtered without parsing descriptions. FromArea, ToArea
// and Pieces are nil for non-movement actions.
type Event struct {
	id          kernel.UUID
	unitID      kernel.UUID
	action      Action
	description string
	actor       kernel.UUID
	fromArea    *kernel.Area
	toArea      *kernel.Area
	pieces      *int
	occurredAt  time.Time

	isConstructed bool
}

// NewEvent creates a history event with validation. The description is the
// human-readable line shown in the unit timeline and may be empty when the
// action speaks for itself.
func NewEvent(
	id kernel.UUID,
	unitID kernel.UUID,
	action Action,
	description string,
	actor kernel.UUID,
	occurredAt time.Time,
) (*Event, error) {
	e := &Event{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setUnitID(unitID),
		e.setAction(action),
		e.setActor(actor),
	); err != nil {
		return nil, err
	}

	e.description = description
	e.occurredAt = occurredAt

	return e, nil
}

// NewMovementEvent creates a history event for a transfer action, carrying
// the route and piece count alongside the description.
func NewMovementEvent(
	id kernel.UUID,
	unitID kernel.UUID,
	action Action,
	description string,
	actor kernel.UUID,
	fromArea kernel.Area,
	toArea kernel.Area,
	pieces int,
	occurredAt time.Time,
) (*Event, error) {
	e, err := NewEvent(id, unitID, action, description, actor, occurredAt)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(fromArea.Validate(), toArea.Validate()); err != nil {
		return nil, err
	}
	if pieces <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("pieces",
			fmt.Errorf("%d is not greater than 0", pieces))
	}

	e.fromArea = &fromArea
	e.toArea = &toArea
	e.pieces = &pieces

	return e, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// UnitID returns the identifier of the unit the event belongs to.
func (e *Event) UnitID() kernel.UUID {
	return e.unitID
}

// Action returns what happened.
func (e *Event) Action() Action {
	return e.action
}

// Description returns the human-readable timeline line.
func (e *Event) Description() string {
	return e.description
}

// Actor returns the identifier of the user who caused the event.
func (e *Event) Actor() kernel.UUID {
	return e.actor
}

// FromArea returns the movement source, nil for non-movement actions.
func (e *Event) FromArea() *kernel.Area {
	return e.fromArea
}

// ToArea returns the movement destination, nil for non-movement actions.
func (e *Event) ToArea() *kernel.Area {
	return e.toArea
}

// Pieces returns the moved piece count, nil for non-movement actions.
func (e *Event) Pieces() *int {
	return e.pieces
}

// OccurredAt returns when the event happened.
func (e *Event) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitId", err)
	}
	e.unitID = unitID
	return nil
}

func (e *Event) setAction(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	e.action = action
	return nil
}

func (e *Event) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	e.actor = actor
	return nil
}

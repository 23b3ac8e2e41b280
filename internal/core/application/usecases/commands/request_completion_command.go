package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrRequestCompletionCommandIsNotConstructed = errors.New(
		"RequestCompletionCommand must be created via NewRequestCompletionCommand constructor",
	)
)

// RequestCompletionCommand represents a floor area asking a privileged role
// to close a unit. The unit's status does not change; the request lives in
// history and in the notification to the privileged areas.
type RequestCompletionCommand struct { //nolint:recvcheck //using for validation
	unitID      kernel.UUID
	notes       string
	requestedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestCompletionCommand creates a command to request unit completion.
func NewRequestCompletionCommand(unitID kernel.UUID, notes string, requestedBy kernel.UUID) (RequestCompletionCommand, error) {
	command := RequestCompletionCommand{
		guard: guard.NewConstructorGuard(),
		notes: notes,
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setRequestedBy(requestedBy),
	); err != nil {
		return RequestCompletionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCompletionCommand) Validate() error {
	return c.guard.Validate(ErrRequestCompletionCommandIsNotConstructed)
}

// UnitID returns the identifier of the unit to close.
func (c RequestCompletionCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Notes returns the optional request context.
func (c RequestCompletionCommand) Notes() string {
	return c.notes
}

// RequestedBy returns the requesting user's identifier.
func (c RequestCompletionCommand) RequestedBy() kernel.UUID {
	return c.requestedBy
}

func (c *RequestCompletionCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *RequestCompletionCommand) setRequestedBy(requestedBy kernel.UUID) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}
	c.requestedBy = requestedBy
	return nil
}

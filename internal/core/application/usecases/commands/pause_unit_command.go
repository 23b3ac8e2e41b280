package commands

import (
	"errors"
	"fmt"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	ErrPauseUnitCommandIsNotConstructed = errors.New(
		"PauseUnitCommand must be created via NewPauseUnitCommand constructor",
	)
)

// minPauseReasonLength keeps pause reasons meaningful; one-word reasons tell
// the next shift nothing.
const minPauseReasonLength = 10

// PauseUnitCommand represents a request to put an active order on hold.
type PauseUnitCommand struct { //nolint:recvcheck //using for validation
	unitID   kernel.UUID
	pausedBy kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewPauseUnitCommand creates a command to pause an order. The reason is
// mandatory and must carry at least ten characters.
func NewPauseUnitCommand(unitID, pausedBy kernel.UUID, reason string) (PauseUnitCommand, error) {
	command := PauseUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setPausedBy(pausedBy),
		command.setReason(reason),
	); err != nil {
		return PauseUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseUnitCommand) Validate() error {
	return c.guard.Validate(ErrPauseUnitCommandIsNotConstructed)
}

// UnitID returns the identifier of the order to pause.
func (c PauseUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// PausedBy returns the pausing user's identifier.
func (c PauseUnitCommand) PausedBy() kernel.UUID {
	return c.pausedBy
}

// Reason returns why production stops.
func (c PauseUnitCommand) Reason() string {
	return c.reason
}

func (c *PauseUnitCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *PauseUnitCommand) setPausedBy(pausedBy kernel.UUID) error {
	if err := pausedBy.Validate(); err != nil {
		return err
	}
	c.pausedBy = pausedBy
	return nil
}

func (c *PauseUnitCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if len(reason) < minPauseReasonLength {
		return errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("must carry at least %d characters", minPauseReasonLength))
	}
	c.reason = reason
	return nil
}

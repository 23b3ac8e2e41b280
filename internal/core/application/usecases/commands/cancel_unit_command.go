package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	ErrCancelUnitCommandIsNotConstructed = errors.New(
		"CancelUnitCommand must be created via NewCancelUnitCommand constructor",
	)
)

// CancelUnitCommand represents a request to close a unit before completion.
type CancelUnitCommand struct { //nolint:recvcheck //using for validation
	unitID     kernel.UUID
	reason     string
	canceledBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelUnitCommand creates a command to cancel a unit. The reason is
// mandatory.
func NewCancelUnitCommand(unitID kernel.UUID, reason string, canceledBy kernel.UUID) (CancelUnitCommand, error) {
	command := CancelUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setReason(reason),
		command.setCanceledBy(canceledBy),
	); err != nil {
		return CancelUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelUnitCommand) Validate() error {
	return c.guard.Validate(ErrCancelUnitCommandIsNotConstructed)
}

// UnitID returns the identifier of the unit to cancel.
func (c CancelUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Reason returns why the unit closes early.
func (c CancelUnitCommand) Reason() string {
	return c.reason
}

// CanceledBy returns the canceling user's identifier.
func (c CancelUnitCommand) CanceledBy() kernel.UUID {
	return c.canceledBy
}

func (c *CancelUnitCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *CancelUnitCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

func (c *CancelUnitCommand) setCanceledBy(canceledBy kernel.UUID) error {
	if err := canceledBy.Validate(); err != nil {
		return err
	}
	c.canceledBy = canceledBy
	return nil
}

package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrResumeUnitCommandIsNotConstructed = errors.New(
		"ResumeUnitCommand must be created via NewResumeUnitCommand constructor",
	)
)

// ResumeUnitCommand represents a request to reactivate a paused order.
type ResumeUnitCommand struct { //nolint:recvcheck //using for validation
	unitID    kernel.UUID
	resumedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeUnitCommand creates a command to resume a paused order.
func NewResumeUnitCommand(unitID, resumedBy kernel.UUID) (ResumeUnitCommand, error) {
	command := ResumeUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setResumedBy(resumedBy),
	); err != nil {
		return ResumeUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeUnitCommand) Validate() error {
	return c.guard.Validate(ErrResumeUnitCommandIsNotConstructed)
}

// UnitID returns the identifier of the order to resume.
func (c ResumeUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// ResumedBy returns the resuming user's identifier.
func (c ResumeUnitCommand) ResumedBy() kernel.UUID {
	return c.resumedBy
}

func (c *ResumeUnitCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *ResumeUnitCommand) setResumedBy(resumedBy kernel.UUID) error {
	if err := resumedBy.Validate(); err != nil {
		return err
	}
	c.resumedBy = resumedBy
	return nil
}

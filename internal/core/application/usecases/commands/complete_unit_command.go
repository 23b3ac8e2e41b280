package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrCompleteUnitCommandIsNotConstructed = errors.New(
		"CompleteUnitCommand must be created via NewCompleteUnitCommand constructor",
	)

	// ErrCallerNotPrivileged is returned when a privileged-only operation is
	// attempted by a regular area user.
	ErrCallerNotPrivileged = errors.New("caller is not privileged")
)

// CompleteUnitCommand represents a request to close a unit as finished.
type CompleteUnitCommand struct { //nolint:recvcheck //using for validation
	unitID      kernel.UUID
	completedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteUnitCommand creates a command to complete a unit.
func NewCompleteUnitCommand(unitID, completedBy kernel.UUID) (CompleteUnitCommand, error) {
	command := CompleteUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setCompletedBy(completedBy),
	); err != nil {
		return CompleteUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteUnitCommand) Validate() error {
	return c.guard.Validate(ErrCompleteUnitCommandIsNotConstructed)
}

// UnitID returns the identifier of the unit to complete.
func (c CompleteUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// CompletedBy returns the completing user's identifier.
func (c CompleteUnitCommand) CompletedBy() kernel.UUID {
	return c.completedBy
}

func (c *CompleteUnitCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *CompleteUnitCommand) setCompletedBy(completedBy kernel.UUID) error {
	if err := completedBy.Validate(); err != nil {
		return err
	}
	c.completedBy = completedBy
	return nil
}

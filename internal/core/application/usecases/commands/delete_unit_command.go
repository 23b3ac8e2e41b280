package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrDeleteUnitCommandIsNotConstructed = errors.New(
		"DeleteUnitCommand must be created via NewDeleteUnitCommand constructor",
	)
)

// DeleteUnitCommand represents a request to soft-delete a unit. The row and
// its ledger, transfer, timer, and history records stay for audit.
type DeleteUnitCommand struct { //nolint:recvcheck //using for validation
	unitID    kernel.UUID
	deletedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUnitCommand creates a command to soft-delete a unit.
func NewDeleteUnitCommand(unitID, deletedBy kernel.UUID) (DeleteUnitCommand, error) {
	command := DeleteUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setDeletedBy(deletedBy),
	); err != nil {
		return DeleteUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUnitCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUnitCommandIsNotConstructed)
}

// UnitID returns the identifier of the unit to delete.
func (c DeleteUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// DeletedBy returns the deleting user's identifier.
func (c DeleteUnitCommand) DeletedBy() kernel.UUID {
	return c.deletedBy
}

func (c *DeleteUnitCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *DeleteUnitCommand) setDeletedBy(deletedBy kernel.UUID) error {
	if err := deletedBy.Validate(); err != nil {
		return err
	}
	c.deletedBy = deletedBy
	return nil
}

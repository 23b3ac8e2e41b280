package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	ErrProposeTransferCommandIsNotConstructed = errors.New(
		"ProposeTransferCommand must be created via NewProposeTransferCommand constructor",
	)
)

// ProposeTransferCommand represents a request to move pieces of a unit from
// one area to another. The destination must accept before custody changes.
type ProposeTransferCommand struct { //nolint:recvcheck //using for validation
	transferID kernel.UUID
	unitID     kernel.UUID
	fromArea   kernel.Area
	toArea     kernel.Area
	pieces     int
	proposedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewProposeTransferCommand creates a command to propose a piece transfer.
// Validates identifiers, both areas, and a positive piece count. Custody is
// checked by the handler against the ledger.
func NewProposeTransferCommand(
	transferID kernel.UUID,
	unitID kernel.UUID,
	fromArea kernel.Area,
	toArea kernel.Area,
	pieces int,
	proposedBy kernel.UUID,
) (ProposeTransferCommand, error) {
	command := ProposeTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTransferID(transferID),
		command.setUnitID(unitID),
		command.setAreas(fromArea, toArea),
		command.setPieces(pieces),
		command.setProposedBy(proposedBy),
	); err != nil {
		return ProposeTransferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProposeTransferCommand) Validate() error {
	return c.guard.Validate(ErrProposeTransferCommandIsNotConstructed)
}

// TransferID returns the unique identifier for the new transfer.
func (c ProposeTransferCommand) TransferID() kernel.UUID {
	return c.transferID
}

// UnitID returns the identifier of the unit whose pieces move.
func (c ProposeTransferCommand) UnitID() kernel.UUID {
	return c.unitID
}

// FromArea returns the source area.
func (c ProposeTransferCommand) FromArea() kernel.Area {
	return c.fromArea
}

// ToArea returns the destination area.
func (c ProposeTransferCommand) ToArea() kernel.Area {
	return c.toArea
}

// Pieces returns the number of pieces proposed to move.
func (c ProposeTransferCommand) Pieces() int {
	return c.pieces
}

// ProposedBy returns the proposing user's identifier.
func (c ProposeTransferCommand) ProposedBy() kernel.UUID {
	return c.proposedBy
}

func (c *ProposeTransferCommand) setTransferID(transferID kernel.UUID) error {
	if err := transferID.Validate(); err != nil {
		return err
	}
	c.transferID = transferID
	return nil
}

func (c *ProposeTransferCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *ProposeTransferCommand) setAreas(fromArea, toArea kernel.Area) error {
	if err := errors.Join(fromArea.Validate(), toArea.Validate()); err != nil {
		return err
	}
	if fromArea.IsEqual(toArea) {
		return errs.NewValueIsInvalidError("toArea")
	}
	c.fromArea = fromArea
	c.toArea = toArea
	return nil
}

func (c *ProposeTransferCommand) setPieces(pieces int) error {
	if pieces <= 0 {
		return errs.NewValueIsInvalidError("pieces")
	}
	c.pieces = pieces
	return nil
}

func (c *ProposeTransferCommand) setProposedBy(proposedBy kernel.UUID) error {
	if err := proposedBy.Validate(); err != nil {
		return err
	}
	c.proposedBy = proposedBy
	return nil
}

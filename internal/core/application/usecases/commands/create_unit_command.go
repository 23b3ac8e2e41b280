package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	ErrCreateUnitCommandIsNotConstructed = errors.New(
		"CreateUnitCommand must be created via NewCreateUnitCommand constructor",
	)
)

// CreateUnitCommand represents a request to register a new work unit.
// The unit starts in its kind's initial status with every piece in the
// initial area.
type CreateUnitCommand struct { //nolint:recvcheck //using for validation
	unitID      kernel.UUID
	kind        unit.Kind
	folio       string
	totalPieces int
	initialArea kernel.Area
	createdBy   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateUnitCommand creates a command to register a new work unit.
// Validates identifiers, the kind, a non-empty folio, a positive piece count,
// and the initial area.
func NewCreateUnitCommand(
	unitID kernel.UUID,
	kind unit.Kind,
	folio string,
	totalPieces int,
	initialArea kernel.Area,
	createdBy kernel.UUID,
) (CreateUnitCommand, error) {
	command := CreateUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setKind(kind),
		command.setFolio(folio),
		command.setTotalPieces(totalPieces),
		command.setInitialArea(initialArea),
		command.setCreatedBy(createdBy),
	); err != nil {
		return CreateUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUnitCommand) Validate() error {
	return c.guard.Validate(ErrCreateUnitCommandIsNotConstructed)
}

// UnitID returns the unique identifier for the new unit.
func (c CreateUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Kind returns the variety of the new unit.
func (c CreateUnitCommand) Kind() unit.Kind {
	return c.kind
}

// Folio returns the human-facing code of the new unit.
func (c CreateUnitCommand) Folio() string {
	return c.folio
}

// TotalPieces returns the total piece count of the new unit.
func (c CreateUnitCommand) TotalPieces() int {
	return c.totalPieces
}

// InitialArea returns the area that starts with custody of every piece.
func (c CreateUnitCommand) InitialArea() kernel.Area {
	return c.initialArea
}

// CreatedBy returns the creating user's identifier.
func (c CreateUnitCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateUnitCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *CreateUnitCommand) setKind(kind unit.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateUnitCommand) setFolio(folio string) error {
	if folio == "" {
		return errs.NewValueIsRequiredError("folio")
	}
	c.folio = folio
	return nil
}

func (c *CreateUnitCommand) setTotalPieces(totalPieces int) error {
	if totalPieces <= 0 {
		return errs.NewValueIsInvalidError("totalPieces")
	}
	c.totalPieces = totalPieces
	return nil
}

func (c *CreateUnitCommand) setInitialArea(initialArea kernel.Area) error {
	if err := initialArea.Validate(); err != nil {
		return err
	}
	c.initialArea = initialArea
	return nil
}

func (c *CreateUnitCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	c.createdBy = createdBy
	return nil
}

package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrApproveRepositionCommandIsNotConstructed = errors.New(
		"ApproveRepositionCommand must be created via NewApproveRepositionCommand constructor",
	)
)

// ApproveRepositionCommand represents the decision on a pending reposition's
// approval gate: let it proceed or reject it. Notes are optional context for
// the requesting area.
type ApproveRepositionCommand struct { //nolint:recvcheck //using for validation
	unitID     kernel.UUID
	approve    bool
	notes      string
	approvedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRepositionCommand creates a command to resolve a reposition's
// approval gate.
func NewApproveRepositionCommand(
	unitID kernel.UUID,
	approve bool,
	notes string,
	approvedBy kernel.UUID,
) (ApproveRepositionCommand, error) {
	command := ApproveRepositionCommand{
		guard:   guard.NewConstructorGuard(),
		approve: approve,
		notes:   notes,
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setApprovedBy(approvedBy),
	); err != nil {
		return ApproveRepositionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRepositionCommand) Validate() error {
	return c.guard.Validate(ErrApproveRepositionCommandIsNotConstructed)
}

// UnitID returns the identifier of the pending reposition.
func (c ApproveRepositionCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Approve reports whether the gate opens (true) or the reposition is
// rejected.
func (c ApproveRepositionCommand) Approve() bool {
	return c.approve
}

// Notes returns the optional decision context.
func (c ApproveRepositionCommand) Notes() string {
	return c.notes
}

// ApprovedBy returns the deciding user's identifier.
func (c ApproveRepositionCommand) ApprovedBy() kernel.UUID {
	return c.approvedBy
}

func (c *ApproveRepositionCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *ApproveRepositionCommand) setApprovedBy(approvedBy kernel.UUID) error {
	if err := approvedBy.Validate(); err != nil {
		return err
	}
	c.approvedBy = approvedBy
	return nil
}

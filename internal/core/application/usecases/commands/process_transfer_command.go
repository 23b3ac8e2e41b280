package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrProcessTransferCommandIsNotConstructed = errors.New(
		"ProcessTransferCommand must be created via NewProcessTransferCommand constructor",
	)
)

// ProcessTransferCommand represents the destination's decision on a pending
// transfer: take custody of the pieces or decline them.
type ProcessTransferCommand struct { //nolint:recvcheck //using for validation
	transferID  kernel.UUID
	accept      bool
	processedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessTransferCommand creates a command to accept or reject a pending
// transfer.
func NewProcessTransferCommand(
	transferID kernel.UUID,
	accept bool,
	processedBy kernel.UUID,
) (ProcessTransferCommand, error) {
	command := ProcessTransferCommand{
		guard:  guard.NewConstructorGuard(),
		accept: accept,
	}

	if err := errors.Join(
		command.setTransferID(transferID),
		command.setProcessedBy(processedBy),
	); err != nil {
		return ProcessTransferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessTransferCommand) Validate() error {
	return c.guard.Validate(ErrProcessTransferCommandIsNotConstructed)
}

// TransferID returns the identifier of the pending transfer.
func (c ProcessTransferCommand) TransferID() kernel.UUID {
	return c.transferID
}

// Accept reports whether the decision takes custody (true) or declines it.
func (c ProcessTransferCommand) Accept() bool {
	return c.accept
}

// ProcessedBy returns the deciding user's identifier.
func (c ProcessTransferCommand) ProcessedBy() kernel.UUID {
	return c.processedBy
}

func (c *ProcessTransferCommand) setTransferID(transferID kernel.UUID) error {
	if err := transferID.Validate(); err != nil {
		return err
	}
	c.transferID = transferID
	return nil
}

func (c *ProcessTransferCommand) setProcessedBy(processedBy kernel.UUID) error {
	if err := processedBy.Validate(); err != nil {
		return err
	}
	c.processedBy = processedBy
	return nil
}

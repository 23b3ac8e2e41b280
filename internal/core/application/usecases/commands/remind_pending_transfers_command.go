package commands

import (
	"errors"
	"time"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	ErrRemindPendingTransfersCommandIsNotConstructed = errors.New(
		"RemindPendingTransfersCommand must be created via NewRemindPendingTransfersCommand constructor",
	)
)

// RemindPendingTransfersCommand represents a request to re-notify destination
// areas about transfers that have been waiting longer than the threshold.
type RemindPendingTransfersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemindPendingTransfersCommand creates a reminder command for transfers
// pending longer than olderThan.
func NewRemindPendingTransfersCommand(olderThan time.Duration) (RemindPendingTransfersCommand, error) {
	command := RemindPendingTransfersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOlderThan(olderThan); err != nil {
		return RemindPendingTransfersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindPendingTransfersCommand) Validate() error {
	return c.guard.Validate(ErrRemindPendingTransfersCommandIsNotConstructed)
}

// OlderThan returns the minimum age a pending transfer must reach before a
// reminder is sent.
func (c RemindPendingTransfersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *RemindPendingTransfersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsOutOfRangeError("olderThan", olderThan, time.Duration(1), nil)
	}
	c.olderThan = olderThan
	return nil
}

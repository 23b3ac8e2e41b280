package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrStartTimerCommandIsNotConstructed = errors.New(
		"StartTimerCommand must be created via NewStartTimerCommand constructor",
	)
)

// StartTimerCommand represents a request to start measuring how long a unit
// spends in an area.
type StartTimerCommand struct { //nolint:recvcheck //using for validation
	unitID    kernel.UUID
	area      kernel.Area
	startedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTimerCommand creates a command to start a live timer.
func NewStartTimerCommand(unitID kernel.UUID, area kernel.Area, startedBy kernel.UUID) (StartTimerCommand, error) {
	command := StartTimerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setArea(area),
		command.setStartedBy(startedBy),
	); err != nil {
		return StartTimerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTimerCommand) Validate() error {
	return c.guard.Validate(ErrStartTimerCommandIsNotConstructed)
}

// UnitID returns the identifier of the timed unit.
func (c StartTimerCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Area returns the area the time is spent in.
func (c StartTimerCommand) Area() kernel.Area {
	return c.area
}

// StartedBy returns the starting user's identifier.
func (c StartTimerCommand) StartedBy() kernel.UUID {
	return c.startedBy
}

func (c *StartTimerCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *StartTimerCommand) setArea(area kernel.Area) error {
	if err := area.Validate(); err != nil {
		return err
	}
	c.area = area
	return nil
}

func (c *StartTimerCommand) setStartedBy(startedBy kernel.UUID) error {
	if err := startedBy.Validate(); err != nil {
		return err
	}
	c.startedBy = startedBy
	return nil
}

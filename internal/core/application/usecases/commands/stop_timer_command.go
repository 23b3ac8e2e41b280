package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrStopTimerCommandIsNotConstructed = errors.New(
		"StopTimerCommand must be created via NewStopTimerCommand constructor",
	)
)

// StopTimerCommand represents a request to stop the running timer of a unit
// in an area, fixing its elapsed minutes forever.
type StopTimerCommand struct { //nolint:recvcheck //using for validation
	unitID    kernel.UUID
	area      kernel.Area
	stoppedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewStopTimerCommand creates a command to stop a live timer.
func NewStopTimerCommand(unitID kernel.UUID, area kernel.Area, stoppedBy kernel.UUID) (StopTimerCommand, error) {
	command := StopTimerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setArea(area),
		command.setStoppedBy(stoppedBy),
	); err != nil {
		return StopTimerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StopTimerCommand) Validate() error {
	return c.guard.Validate(ErrStopTimerCommandIsNotConstructed)
}

// UnitID returns the identifier of the timed unit.
func (c StopTimerCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Area returns the area whose timer stops.
func (c StopTimerCommand) Area() kernel.Area {
	return c.area
}

// StoppedBy returns the stopping user's identifier.
func (c StopTimerCommand) StoppedBy() kernel.UUID {
	return c.stoppedBy
}

func (c *StopTimerCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *StopTimerCommand) setArea(area kernel.Area) error {
	if err := area.Validate(); err != nil {
		return err
	}
	c.area = area
	return nil
}

func (c *StopTimerCommand) setStoppedBy(stoppedBy kernel.UUID) error {
	if err := stoppedBy.Validate(); err != nil {
		return err
	}
	c.stoppedBy = stoppedBy
	return nil
}

package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	ErrSetManualTimerCommandIsNotConstructed = errors.New(
		"SetManualTimerCommand must be created via NewSetManualTimerCommand constructor",
	)
)

// SetManualTimerCommand represents a request to record an area interval
// after the fact, for areas that worked without a running timer. The start
// and end each come as a "YYYY-MM-DD" date plus an "HH:MM" time of day;
// format and span validation happen in the timer constructor.
type SetManualTimerCommand struct { //nolint:recvcheck //using for validation
	unitID     kernel.UUID
	area       kernel.Area
	startDate  string
	startTime  string
	endDate    string
	endTime    string
	recordedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetManualTimerCommand creates a command to record a manual interval.
func NewSetManualTimerCommand(
	unitID kernel.UUID,
	area kernel.Area,
	startDate string,
	startTime string,
	endDate string,
	endTime string,
	recordedBy kernel.UUID,
) (SetManualTimerCommand, error) {
	command := SetManualTimerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setArea(area),
		command.setStart(startDate, startTime),
		command.setEnd(endDate, endTime),
		command.setRecordedBy(recordedBy),
	); err != nil {
		return SetManualTimerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetManualTimerCommand) Validate() error {
	return c.guard.Validate(ErrSetManualTimerCommandIsNotConstructed)
}

// UnitID returns the identifier of the timed unit.
func (c SetManualTimerCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Area returns the area the time was spent in.
func (c SetManualTimerCommand) Area() kernel.Area {
	return c.area
}

// StartDate returns the interval start date as "YYYY-MM-DD".
func (c SetManualTimerCommand) StartDate() string {
	return c.startDate
}

// StartTime returns the interval start time of day as "HH:MM".
func (c SetManualTimerCommand) StartTime() string {
	return c.startTime
}

// EndDate returns the interval end date as "YYYY-MM-DD".
func (c SetManualTimerCommand) EndDate() string {
	return c.endDate
}

// EndTime returns the interval end time of day as "HH:MM".
func (c SetManualTimerCommand) EndTime() string {
	return c.endTime
}

// RecordedBy returns the recording user's identifier.
func (c SetManualTimerCommand) RecordedBy() kernel.UUID {
	return c.recordedBy
}

func (c *SetManualTimerCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *SetManualTimerCommand) setArea(area kernel.Area) error {
	if err := area.Validate(); err != nil {
		return err
	}
	c.area = area
	return nil
}

func (c *SetManualTimerCommand) setStart(startDate, startTime string) error {
	if startDate == "" {
		return errs.NewValueIsRequiredError("startDate")
	}
	if startTime == "" {
		return errs.NewValueIsRequiredError("startTime")
	}
	c.startDate = startDate
	c.startTime = startTime
	return nil
}

func (c *SetManualTimerCommand) setEnd(endDate, endTime string) error {
	if endDate == "" {
		return errs.NewValueIsRequiredError("endDate")
	}
	if endTime == "" {
		return errs.NewValueIsRequiredError("endTime")
	}
	c.endDate = endDate
	c.endTime = endTime
	return nil
}

func (c *SetManualTimerCommand) setRecordedBy(recordedBy kernel.UUID) error {
	if err := recordedBy.Validate(); err != nil {
		return err
	}
	c.recordedBy = recordedBy
	return nil
}

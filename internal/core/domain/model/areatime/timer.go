package areatime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrTimerIsNotConstructed is returned when a Timer instance was not
	// created through one of the factory methods.
	ErrTimerIsNotConstructed = errors.New("Timer must be created via NewLiveTimer or NewManualTimer constructor")

	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// dateTimeLayout is the wire form of a manual timer's interval endpoints,
// assembled from a "YYYY-MM-DD" date and an "HH:MM" time of day.
const dateTimeLayout = "2006-01-02 15:04"

// Timer is the area-time record of a unit in one area. Exactly one timer may
// ever exist per (unit, area) pair; once stopped, its elapsed minutes are
// final. A timer is either live (started on the floor and stopped later) or
// manual (a supervisor records a duration after the fact).
type Timer struct {
	unitID    kernel.UUID
	area      kernel.Area
	manual    bool
	startedAt time.Time
	stoppedAt *time.Time
	minutes   *int
	createdBy kernel.UUID

	isConstructed bool
}

// NewLiveTimer starts a running timer for the unit in the given area.
// The elapsed time is fixed when Stop is called.
func NewLiveTimer(unitID kernel.UUID, area kernel.Area, createdBy kernel.UUID, startedAt time.Time) (*Timer, error) {
	t := &Timer{
		isConstructed: true,
	}

	if err := t.setIdentity(unitID, area, createdBy); err != nil {
		return nil, err
	}

	t.startedAt = startedAt

	return t, nil
}

// NewManualTimer records an already-elapsed interval for the unit in the
// given area. Both endpoints come as a "YYYY-MM-DD" date plus an "HH:MM"
// time of day; the elapsed minutes are computed across the full span, which
// may cross midnight or several days (a night shift, a piece parked over a
// weekend). An end before the start is rejected. The resulting timer is
// stopped from the start and its minutes are final.
func NewManualTimer(
	unitID kernel.UUID,
	area kernel.Area,
	createdBy kernel.UUID,
	startDate, startTime string,
	endDate, endTime string,
) (*Timer, error) {
	t := &Timer{
		isConstructed: true,
		manual:        true,
	}

	if err := t.setIdentity(unitID, area, createdBy); err != nil {
		return nil, err
	}

	start, err := parseDateTime(startDate, startTime, "startDate", "startTime")
	if err != nil {
		return nil, err
	}
	end, err := parseDateTime(endDate, endTime, "endDate", "endTime")
	if err != nil {
		return nil, err
	}

	if end.Before(start) {
		return nil, errs.NewValueIsInvalidErrorWithCause("endTime",
			fmt.Errorf("interval ends %s before it starts %s",
				end.Format(dateTimeLayout), start.Format(dateTimeLayout)))
	}

	minutes := int(end.Sub(start) / time.Minute)
	t.startedAt = start
	t.stoppedAt = &end
	t.minutes = &minutes

	return t, nil
}

// RestoreTimer reconstructs a Timer from persistence.
func RestoreTimer(
	unitID kernel.UUID,
	area kernel.Area,
	manual bool,
	startedAt time.Time,
	stoppedAt *time.Time,
	minutes *int,
	createdBy kernel.UUID,
) (*Timer, error) {
	t := &Timer{
		isConstructed: true,
		manual:        manual,
	}

	if err := t.setIdentity(unitID, area, createdBy); err != nil {
		return nil, err
	}

	if (stoppedAt == nil) != (minutes == nil) {
		return nil, errs.NewValueIsInvalidError("stoppedAt")
	}
	if minutes != nil && *minutes < 0 {
		return nil, errs.NewValueIsInvalidError("minutes")
	}

	t.startedAt = startedAt
	t.stoppedAt = stoppedAt
	t.minutes = minutes

	return t, nil
}

// Validate ensures the Timer instance was properly constructed.
func (t *Timer) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTimerIsNotConstructed
	}
	return nil
}

// UnitID returns the identifier of the timed unit.
func (t *Timer) UnitID() kernel.UUID {
	return t.unitID
}

// Area returns the area the time was spent in.
func (t *Timer) Area() kernel.Area {
	return t.area
}

// IsManual reports whether the duration was recorded after the fact rather
// than measured by a running timer.
func (t *Timer) IsManual() bool {
	return t.manual
}

// IsRunning reports whether the timer is still measuring.
func (t *Timer) IsRunning() bool {
	return t.stoppedAt == nil
}

// StartedAt returns the start instant of a live timer, or the recorded
// interval start of a manual one.
func (t *Timer) StartedAt() time.Time {
	return t.startedAt
}

// StoppedAt returns the stop instant, or nil while the timer runs.
func (t *Timer) StoppedAt() *time.Time {
	return t.stoppedAt
}

// Minutes returns the final elapsed whole minutes and true once the timer is
// stopped. A running timer has no minutes yet.
func (t *Timer) Minutes() (int, bool) {
	if t.minutes == nil {
		return 0, false
	}
	return *t.minutes, true
}

// CreatedBy returns the identifier of the user who started or recorded the
// timer.
func (t *Timer) CreatedBy() kernel.UUID {
	return t.createdBy
}

// Stop fixes the elapsed time of a running live timer. Partial minutes are
// truncated. Stopping an already-stopped timer or a manual timer fails, as
// does a stop instant before the start.
func (t *Timer) Stop(stoppedAt time.Time) error {
	if t.manual {
		return errs.NewInvalidStateError("timer", "manual")
	}
	if t.stoppedAt != nil {
		return errs.NewInvalidStateError("timer", "stopped")
	}
	if stoppedAt.Before(t.startedAt) {
		return errs.NewValueIsInvalidErrorWithCause("stoppedAt",
			fmt.Errorf("stop instant precedes start %s", t.startedAt.Format(time.RFC3339)))
	}

	minutes := int(stoppedAt.Sub(t.startedAt) / time.Minute)
	t.stoppedAt = &stoppedAt
	t.minutes = &minutes
	return nil
}

// FormatElapsed renders the final minutes as "Xh Ym" for history entries and
// notifications. Returns an empty string while the timer runs.
func (t *Timer) FormatElapsed() string {
	if t.minutes == nil {
		return ""
	}
	return fmt.Sprintf("%dh %dm", *t.minutes/60, *t.minutes%60)
}

func (t *Timer) setIdentity(unitID kernel.UUID, area kernel.Area, createdBy kernel.UUID) error {
	return errors.Join(
		t.setUnitID(unitID),
		t.setArea(area),
		t.setCreatedBy(createdBy),
	)
}

func (t *Timer) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitId", err)
	}
	t.unitID = unitID
	return nil
}

func (t *Timer) setArea(area kernel.Area) error {
	if err := area.Validate(); err != nil {
		return err
	}
	t.area = area
	return nil
}

func (t *Timer) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	t.createdBy = createdBy
	return nil
}

// parseDateTime assembles one interval endpoint from a "YYYY-MM-DD" date and
// an "HH:MM" time of day, in UTC.
func parseDateTime(date, clock, dateParam, timeParam string) (time.Time, error) {
	if !datePattern.MatchString(date) {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(dateParam,
			fmt.Errorf("%q does not match YYYY-MM-DD", date))
	}
	if !timePattern.MatchString(clock) {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(timeParam,
			fmt.Errorf("%q does not match HH:MM", clock))
	}

	hours, _ := strconv.Atoi(clock[:2])
	if hours > 23 {
		return time.Time{}, errs.NewValueIsOutOfRangeError(timeParam+" hours", hours, 0, 23)
	}
	mins, _ := strconv.Atoi(clock[3:])
	if mins > 59 {
		return time.Time{}, errs.NewValueIsOutOfRangeError(timeParam+" minutes", mins, 0, 59)
	}

	parsed, err := time.Parse(dateTimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(dateParam, err)
	}
	return parsed, nil
}

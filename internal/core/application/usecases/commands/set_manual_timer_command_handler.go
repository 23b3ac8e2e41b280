package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/areatime"
	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
)

// SetManualTimerCommandHandler handles after-the-fact interval records.
// Like live timers, manual records are write-once per (unit, area): the
// repository insert fails when any record exists for the pair.
type SetManualTimerCommandHandler struct {
	uowFactory TimerUoWFactory
	clock      func() time.Time
}

// NewSetManualTimerCommandHandler creates a handler for manual duration records.
func NewSetManualTimerCommandHandler(uowFactory TimerUoWFactory) SetManualTimerCommandHandler {
	return SetManualTimerCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the manual record command.
func (h SetManualTimerCommandHandler) Handle(ctx context.Context, command SetManualTimerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	timer, err := areatime.NewManualTimer(
		command.UnitID(), command.Area(), command.RecordedBy(),
		command.StartDate(), command.StartTime(),
		command.EndDate(), command.EndTime(),
	)
	if err != nil {
		return err
	}

	now := h.clock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.UnitRepository().Get(ctx, command.UnitID()); err != nil {
		return err
	}

	if err = uow.TimerRepository().Add(ctx, timer); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(), command.UnitID(), history.ActionManualTimeSet,
		fmt.Sprintf("Tiempo manual registrado en %s: %s %s - %s %s, duracion %s",
			command.Area().DisplayName(),
			command.StartDate(), command.StartTime(),
			command.EndDate(), command.EndTime(),
			timer.FormatElapsed()),
		command.RecordedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
)

// StopTimerCommandHandler handles stopping live timers. The stop fixes the
// elapsed minutes and appends a timer_stopped history event; there is no way
// to restart or amend the record afterwards.
type StopTimerCommandHandler struct {
	uowFactory TimerUoWFactory
	clock      func() time.Time
}

// NewStopTimerCommandHandler creates a handler for stopping live timers.
func NewStopTimerCommandHandler(uowFactory TimerUoWFactory) StopTimerCommandHandler {
	return StopTimerCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the stop command.
func (h StopTimerCommandHandler) Handle(ctx context.Context, command StopTimerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	now := h.clock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	timer, err := uow.TimerRepository().Get(ctx, command.UnitID(), command.Area())
	if err != nil {
		return err
	}

	if err = timer.Stop(now); err != nil {
		return err
	}

	if err = uow.TimerRepository().Update(ctx, timer); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(), command.UnitID(), history.ActionTimerStopped,
		fmt.Sprintf("Temporizador detenido en %s: %s (%s:00)",
			command.Area().DisplayName(), timer.FormatElapsed(), now.Format("15:04")),
		command.StoppedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

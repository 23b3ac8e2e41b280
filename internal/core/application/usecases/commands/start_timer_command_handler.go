package commands

import (
	"context"
	"time"

	"tracker/internal/core/domain/model/areatime"
)

// StartTimerCommandHandler handles starting live timers. The write-once rule
// is enforced by the timer repository: a second timer for the same
// (unit, area) pair fails with a DuplicateTimeRecordError, whether the first
// one is still running or long finished.
type StartTimerCommandHandler struct {
	uowFactory TimerUoWFactory
	clock      func() time.Time
}

// NewStartTimerCommandHandler creates a handler for starting live timers.
func NewStartTimerCommandHandler(uowFactory TimerUoWFactory) StartTimerCommandHandler {
	return StartTimerCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the start command.
func (h StartTimerCommandHandler) Handle(ctx context.Context, command StartTimerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	timer, err := areatime.NewLiveTimer(command.UnitID(), command.Area(), command.StartedBy(), h.clock())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The unit must exist; Get surfaces NotFound before the insert.
	if _, err = uow.UnitRepository().Get(ctx, command.UnitID()); err != nil {
		return err
	}

	if err = uow.TimerRepository().Add(ctx, timer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

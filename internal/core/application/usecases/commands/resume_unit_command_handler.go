package commands

import (
	"context"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
)

// ResumeUnitCommandHandler handles reactivating paused orders. No custody
// guard applies: any area may resume once the hold reason is resolved.
type ResumeUnitCommandHandler struct {
	uowFactory UnitUoWFactory
	clock      func() time.Time
}

// NewResumeUnitCommandHandler creates a handler for resuming orders.
func NewResumeUnitCommandHandler(uowFactory UnitUoWFactory) ResumeUnitCommandHandler {
	return ResumeUnitCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the resume command.
func (h ResumeUnitCommandHandler) Handle(ctx context.Context, command ResumeUnitCommand) error {
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

	trackedUnit, err := uow.UnitRepository().Get(ctx, command.UnitID())
	if err != nil {
		return err
	}

	if err = trackedUnit.Resume(); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, trackedUnit); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(), command.UnitID(), history.ActionResumed,
		"Orden reanudada", command.ResumedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

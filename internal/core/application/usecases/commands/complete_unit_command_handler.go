package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/ports"
)

// CompleteUnitCommandHandler handles closing units. Completion is reserved
// for privileged roles; floor areas hand off through transfers and request
// completion instead.
type CompleteUnitCommandHandler struct {
	uowFactory UnitUoWFactory
	roles      ports.RoleResolver
	clock      func() time.Time
}

// NewCompleteUnitCommandHandler creates a handler for completing units.
func NewCompleteUnitCommandHandler(uowFactory UnitUoWFactory, roles ports.RoleResolver) CompleteUnitCommandHandler {
	return CompleteUnitCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		clock:      time.Now,
	}
}

// Handle processes the completion command.
func (h CompleteUnitCommandHandler) Handle(ctx context.Context, command CompleteUnitCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	privileged, err := h.roles.IsPrivileged(ctx, command.CompletedBy())
	if err != nil {
		return err
	}
	if !privileged {
		return ErrCallerNotPrivileged
	}

	now := h.clock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackedUnit, err := uow.UnitRepository().Get(ctx, command.UnitID())
	if err != nil {
		return err
	}

	if err = trackedUnit.Complete(now); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, trackedUnit); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(), command.UnitID(), history.ActionCompleted,
		fmt.Sprintf("%s %s completada", kindNoun(trackedUnit.Kind()), trackedUnit.Folio()),
		command.CompletedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

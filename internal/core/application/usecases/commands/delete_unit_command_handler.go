package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/ports"
)

// DeleteUnitCommandHandler handles soft-deleting units. Privileged roles
// only. Nothing is erased: the status flips to deleted and every related
// record stays queryable for audit.
type DeleteUnitCommandHandler struct {
	uowFactory UnitUoWFactory
	roles      ports.RoleResolver
	notifier   ports.NotificationSink
	clock      func() time.Time
}

// NewDeleteUnitCommandHandler creates a handler for soft-deleting units.
func NewDeleteUnitCommandHandler(
	uowFactory UnitUoWFactory,
	roles ports.RoleResolver,
	notifier ports.NotificationSink,
) DeleteUnitCommandHandler {
	return DeleteUnitCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// Handle processes the deletion command.
func (h DeleteUnitCommandHandler) Handle(ctx context.Context, command DeleteUnitCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	privileged, err := h.roles.IsPrivileged(ctx, command.DeletedBy())
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

	if err = trackedUnit.Delete(); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, trackedUnit); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(), command.UnitID(), history.ActionDeleted,
		fmt.Sprintf("%s %s eliminada", kindNoun(trackedUnit.Kind()), trackedUnit.Folio()),
		command.DeletedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !trackedUnit.CreatedBy().IsEqual(command.DeletedBy()) {
		h.notifier.Emit(ctx, ports.Notification{
			UserID: trackedUnit.CreatedBy().String(),
			Title:  "Unidad eliminada",
			Body: fmt.Sprintf("Tu %s %s fue eliminada",
				kindNoun(trackedUnit.Kind()), trackedUnit.Folio()),
			UnitID: command.UnitID().String(),
		})
	}

	return nil
}

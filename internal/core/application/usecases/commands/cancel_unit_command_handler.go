package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/ports"
)

// CancelUnitCommandHandler handles early closure of units. Privileged roles
// only; the closure time lands in completedAt like a completion would.
type CancelUnitCommandHandler struct {
	uowFactory UnitUoWFactory
	roles      ports.RoleResolver
	notifier   ports.NotificationSink
	clock      func() time.Time
}

// NewCancelUnitCommandHandler creates a handler for canceling units.
func NewCancelUnitCommandHandler(
	uowFactory UnitUoWFactory,
	roles ports.RoleResolver,
	notifier ports.NotificationSink,
) CancelUnitCommandHandler {
	return CancelUnitCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// Handle processes the cancellation command.
func (h CancelUnitCommandHandler) Handle(ctx context.Context, command CancelUnitCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	privileged, err := h.roles.IsPrivileged(ctx, command.CanceledBy())
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

	if err = trackedUnit.Cancel(now); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, trackedUnit); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(), command.UnitID(), history.ActionCanceled,
		fmt.Sprintf("%s %s cancelada: %s", kindNoun(trackedUnit.Kind()), trackedUnit.Folio(), command.Reason()),
		command.CanceledBy(), now,
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

	if !trackedUnit.CreatedBy().IsEqual(command.CanceledBy()) {
		h.notifier.Emit(ctx, ports.Notification{
			UserID: trackedUnit.CreatedBy().String(),
			Title:  "Unidad cancelada",
			Body: fmt.Sprintf("Tu %s %s fue cancelada: %s",
				kindNoun(trackedUnit.Kind()), trackedUnit.Folio(), command.Reason()),
			UnitID: command.UnitID().String(),
		})
	}

	return nil
}

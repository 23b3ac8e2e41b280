package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/ports"
)

// ApproveRepositionCommandHandler handles the approval gate of pending
// repositions. Approval is a status decision only: pieces stay where they
// are until the first transfer is accepted.
type ApproveRepositionCommandHandler struct {
	uowFactory UnitUoWFactory
	roles      ports.RoleResolver
	notifier   ports.NotificationSink
	clock      func() time.Time
}

// NewApproveRepositionCommandHandler creates a handler for the approval gate.
func NewApproveRepositionCommandHandler(
	uowFactory UnitUoWFactory,
	roles ports.RoleResolver,
	notifier ports.NotificationSink,
) ApproveRepositionCommandHandler {
	return ApproveRepositionCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// Handle processes the approval decision. After commit the requesting user
// is told the outcome.
func (h ApproveRepositionCommandHandler) Handle(ctx context.Context, command ApproveRepositionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	privileged, err := h.roles.IsPrivileged(ctx, command.ApprovedBy())
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

	if err = trackedUnit.Approve(command.ApprovedBy(), command.Approve(), now); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, trackedUnit); err != nil {
		return err
	}

	action := history.ActionApproved
	description := fmt.Sprintf("Reposicion %s aprobada", trackedUnit.Folio())
	if !command.Approve() {
		action = history.ActionRejected
		description = fmt.Sprintf("Reposicion %s rechazada", trackedUnit.Folio())
	}
	if command.Notes() != "" {
		description += ": " + command.Notes()
	}

	event, err := history.NewEvent(
		kernel.NewUUID(), command.UnitID(), action, description,
		command.ApprovedBy(), now,
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

	outcome := "aprobada"
	if !command.Approve() {
		outcome = "rechazada"
	}
	h.notifier.Emit(ctx, ports.Notification{
		UserID: trackedUnit.CreatedBy().String(),
		Title:  "Reposicion " + outcome,
		Body:   fmt.Sprintf("Tu reposicion %s fue %s", trackedUnit.Folio(), outcome),
		UnitID: command.UnitID().String(),
	})

	return nil
}

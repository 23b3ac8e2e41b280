package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"
)

// getPrivilegedAreas returns the areas whose users may close units. They are
// the audience of completion requests.
func getPrivilegedAreas() []kernel.Area {
	return []kernel.Area{kernel.AreaAdmin, kernel.AreaEnvios, kernel.AreaOperaciones}
}

// RequestCompletionCommandHandler handles completion requests from floor
// areas. It appends the request to history and pings every privileged area.
type RequestCompletionCommandHandler struct {
	uowFactory UnitUoWFactory
	notifier   ports.NotificationSink
	clock      func() time.Time
}

// NewRequestCompletionCommandHandler creates a handler for completion requests.
func NewRequestCompletionCommandHandler(
	uowFactory UnitUoWFactory,
	notifier ports.NotificationSink,
) RequestCompletionCommandHandler {
	return RequestCompletionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// Handle processes the completion request.
func (h RequestCompletionCommandHandler) Handle(ctx context.Context, command RequestCompletionCommand) error {
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
	if trackedUnit.Status().IsTerminal() {
		return errs.NewInvalidStateError("unit", trackedUnit.Status().String())
	}

	description := fmt.Sprintf("Terminacion solicitada para %s", trackedUnit.Folio())
	if command.Notes() != "" {
		description += ": " + command.Notes()
	}

	event, err := history.NewEvent(
		kernel.NewUUID(), command.UnitID(), history.ActionCompletionRequested,
		description, command.RequestedBy(), now,
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

	for _, area := range getPrivilegedAreas() {
		h.notifier.Emit(ctx, ports.Notification{
			Area:   area,
			Title:  "Solicitud de terminacion",
			Body:   fmt.Sprintf("Se solicita marcar %s como completada", trackedUnit.Folio()),
			UnitID: command.UnitID().String(),
		})
	}

	return nil
}

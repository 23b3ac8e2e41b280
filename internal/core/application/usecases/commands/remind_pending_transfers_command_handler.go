package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/ports"
)

// RemindPendingTransfersCommandHandler re-notifies destination areas about
// transfers that nobody has accepted or rejected yet. Reads only; the
// pending rows stay untouched until someone decides.
type RemindPendingTransfersCommandHandler struct {
	uowFactory TransferUoWFactory
	sink       ports.NotificationSink
	clock      func() time.Time
}

// NewRemindPendingTransfersCommandHandler creates a handler for transfer
// reminders.
func NewRemindPendingTransfersCommandHandler(
	uowFactory TransferUoWFactory,
	sink ports.NotificationSink,
) RemindPendingTransfersCommandHandler {
	return RemindPendingTransfersCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		clock:      time.Now,
	}
}

// Handle processes the reminder command.
func (h RemindPendingTransfersCommandHandler) Handle(
	ctx context.Context,
	command RemindPendingTransfersCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	cutoff := h.clock().Add(-command.OlderThan())

	uow := h.uowFactory.Create()

	stale, err := uow.TransferRepository().GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, pending := range stale {
		trackedUnit, err := uow.UnitRepository().Get(ctx, pending.UnitID())
		if err != nil {
			return err
		}

		h.sink.Emit(ctx, ports.Notification{
			Area:  pending.ToArea(),
			Title: "Transferencia sin responder",
			Body: fmt.Sprintf("La unidad %s tiene %d piezas esperando desde %s",
				trackedUnit.Folio(), pending.Pieces(),
				pending.CreatedAt().Format("02/01/2006 15:04")),
			UnitID: pending.UnitID().String(),
		})
	}

	return nil
}

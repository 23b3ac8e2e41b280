package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/transfer"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"
)

// ProposeTransferCommandHandler handles the business logic for transfer
// proposals. The source's custody is verified at proposal time as a
// courtesy check; the authoritative check runs again at acceptance.
//
// Several pending transfers may together propose more pieces than the
// source holds. That is allowed: whichever is accepted first wins, and the
// re-check at accept time rejects the rest.
type ProposeTransferCommandHandler struct {
	uowFactory TransferUoWFactory
	notifier   ports.NotificationSink
	clock      func() time.Time
}

// NewProposeTransferCommandHandler creates a handler for transfer proposals.
func NewProposeTransferCommandHandler(
	uowFactory TransferUoWFactory,
	notifier ports.NotificationSink,
) ProposeTransferCommandHandler {
	return ProposeTransferCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// Handle processes the transfer proposal command.
// Verifies the unit is open and the source holds the pieces, persists the
// pending transfer with its history event, and notifies the destination
// area after commit.
func (h ProposeTransferCommandHandler) Handle(ctx context.Context, command ProposeTransferCommand) error {
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

	distribution, err := uow.LedgerRepository().GetDistribution(ctx, command.UnitID())
	if err != nil {
		return err
	}
	if !distribution.Holds(command.FromArea(), command.Pieces()) {
		return errs.NewInsufficientCustodyError(
			command.FromArea().String(),
			distribution.CustodyOf(command.FromArea()),
			command.Pieces(),
		)
	}

	newTransfer, err := transfer.NewTransfer(
		command.TransferID(), command.UnitID(), command.FromArea(),
		command.ToArea(), command.Pieces(), command.ProposedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.TransferRepository().Add(ctx, newTransfer); err != nil {
		return err
	}

	description := fmt.Sprintf("Transferencia propuesta: %d piezas de %s a %s",
		command.Pieces(), command.FromArea().DisplayName(), command.ToArea().DisplayName())
	event, err := history.NewMovementEvent(
		kernel.NewUUID(), command.UnitID(), history.ActionTransferCreated, description,
		command.ProposedBy(), command.FromArea(), command.ToArea(), command.Pieces(), now,
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

	h.notifier.Emit(ctx, ports.Notification{
		Area:  command.ToArea(),
		Title: "Transferencia pendiente",
		Body: fmt.Sprintf("%s propone enviar %d piezas de %s a tu area",
			command.FromArea().DisplayName(), command.Pieces(), trackedUnit.Folio()),
		UnitID: command.UnitID().String(),
	})

	return nil
}

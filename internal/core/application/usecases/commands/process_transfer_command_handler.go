package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"
	"tracker/internal/core/domain/model/transfer"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/core/domain/services"
	"tracker/internal/core/ports"
)

// ProcessTransferCommandHandler handles the destination's decision on a
// pending transfer.
//
// Acceptance is the only operation that moves custody: the settlement
// decrements the source row (deleting it at zero), increments or creates the
// destination row, and recomputes the unit's currentArea, all in the
// transaction that flips the transfer status. The status flip itself is
// guarded twice: the domain state machine refuses a second decision, and the
// repository's pending-conditioned UPDATE makes the concurrent loser fail
// even across processes.
type ProcessTransferCommandHandler struct {
	uowFactory TransferUoWFactory
	settler    services.TransferSettler
	notifier   ports.NotificationSink
	clock      func() time.Time
}

// NewProcessTransferCommandHandler creates a handler for transfer decisions.
func NewProcessTransferCommandHandler(
	uowFactory TransferUoWFactory,
	notifier ports.NotificationSink,
) ProcessTransferCommandHandler {
	return ProcessTransferCommandHandler{
		uowFactory: uowFactory,
		settler:    services.NewTransferSettler(),
		notifier:   notifier,
		clock:      time.Now,
	}
}

// Handle processes the transfer decision command.
func (h ProcessTransferCommandHandler) Handle(ctx context.Context, command ProcessTransferCommand) error {
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

	pending, err := uow.TransferRepository().Get(ctx, command.TransferID())
	if err != nil {
		return err
	}

	trackedUnit, err := uow.UnitRepository().Get(ctx, pending.UnitID())
	if err != nil {
		return err
	}

	var settlement services.Settlement
	if command.Accept() {
		settlement, err = h.accept(ctx, uow, pending, trackedUnit, command.ProcessedBy(), now)
	} else {
		err = h.reject(ctx, uow, pending, trackedUnit, command.ProcessedBy(), now)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyAfterCommit(ctx, pending, trackedUnit, settlement)

	return nil
}

// accept settles the transfer against the unit's distribution and persists
// the ledger delta. The custody re-check inside the settler is mandatory:
// the source may have been drained by a competing transfer since proposal.
func (h ProcessTransferCommandHandler) accept(
	ctx context.Context,
	uow TransferUoW,
	pending *transfer.Transfer,
	trackedUnit *unit.Unit,
	processedBy kernel.UUID,
	now time.Time,
) (services.Settlement, error) {
	distribution, err := uow.LedgerRepository().GetDistribution(ctx, pending.UnitID())
	if err != nil {
		return services.Settlement{}, err
	}

	settlement, err := h.settler.Settle(pending, trackedUnit, distribution, processedBy, now)
	if err != nil {
		return services.Settlement{}, err
	}

	if err = uow.TransferRepository().UpdateFromPending(ctx, pending); err != nil {
		return services.Settlement{}, err
	}

	ledgerRepo := uow.LedgerRepository()
	if err = ledgerRepo.SetPieces(ctx, pending.UnitID(), pending.FromArea(), settlement.SourcePieces); err != nil {
		return services.Settlement{}, err
	}
	if settlement.DestinationCreated {
		err = h.addDestinationRecord(ctx, ledgerRepo, pending, settlement.DestinationPieces, now)
	} else {
		err = ledgerRepo.SetPieces(ctx, pending.UnitID(), pending.ToArea(), settlement.DestinationPieces)
	}
	if err != nil {
		return services.Settlement{}, err
	}

	if err = uow.UnitRepository().Update(ctx, trackedUnit); err != nil {
		return services.Settlement{}, err
	}

	description := fmt.Sprintf("%d piezas transferidas de %s a %s",
		pending.Pieces(), pending.FromArea().DisplayName(), pending.ToArea().DisplayName())
	if settlement.DestinationPieces < trackedUnit.TotalPieces() {
		description += " (transferencia parcial)"
	}

	event, err := history.NewMovementEvent(
		kernel.NewUUID(), pending.UnitID(), history.ActionTransferAccepted, description,
		processedBy, pending.FromArea(), pending.ToArea(), pending.Pieces(), now,
	)
	if err != nil {
		return services.Settlement{}, err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return services.Settlement{}, err
	}

	return *settlement, nil
}

// reject flips the status and records the event. The ledger is untouched.
func (h ProcessTransferCommandHandler) reject(
	ctx context.Context,
	uow TransferUoW,
	pending *transfer.Transfer,
	trackedUnit *unit.Unit,
	processedBy kernel.UUID,
	now time.Time,
) error {
	if err := pending.Reject(processedBy, now); err != nil {
		return err
	}

	if err := uow.TransferRepository().UpdateFromPending(ctx, pending); err != nil {
		return err
	}

	description := fmt.Sprintf("Transferencia rechazada: %d piezas de %s a %s",
		pending.Pieces(), pending.FromArea().DisplayName(), pending.ToArea().DisplayName())
	event, err := history.NewMovementEvent(
		kernel.NewUUID(), trackedUnit.ID(), history.ActionTransferRejected, description,
		processedBy, pending.FromArea(), pending.ToArea(), pending.Pieces(), now,
	)
	if err != nil {
		return err
	}

	return uow.HistoryRepository().Add(ctx, event)
}

func (h ProcessTransferCommandHandler) addDestinationRecord(
	ctx context.Context,
	ledgerRepo ports.LedgerRepository,
	pending *transfer.Transfer,
	pieces int,
	now time.Time,
) error {
	record, err := ledger.NewRecord(pending.UnitID(), pending.ToArea(), pieces, now)
	if err != nil {
		return err
	}
	return ledgerRepo.Add(ctx, record)
}

// notifyAfterCommit tells the source area the outcome and warns the
// destination when it accepted only part of the unit.
func (h ProcessTransferCommandHandler) notifyAfterCommit(
	ctx context.Context,
	processed *transfer.Transfer,
	trackedUnit *unit.Unit,
	settlement services.Settlement,
) {
	switch processed.Status() {
	case transfer.StatusAccepted:
		h.notifier.Emit(ctx, ports.Notification{
			Area:  processed.FromArea(),
			Title: "Transferencia aceptada",
			Body: fmt.Sprintf("%s acepto %d piezas de %s",
				processed.ToArea().DisplayName(), processed.Pieces(), trackedUnit.Folio()),
			UnitID: processed.UnitID().String(),
		})
		if processed.IsPartial(trackedUnit.TotalPieces()) && trackedUnit.CurrentArea() == nil {
			h.notifier.Emit(ctx, ports.Notification{
				Area:  processed.ToArea(),
				Title: "Transferencia parcial",
				Body: fmt.Sprintf("Tu area tiene %d de %d piezas de %s; no puede pausar la unidad hasta tener custodia completa",
					settlement.DestinationPieces, trackedUnit.TotalPieces(), trackedUnit.Folio()),
				UnitID: processed.UnitID().String(),
			})
		}
	case transfer.StatusRejected:
		h.notifier.Emit(ctx, ports.Notification{
			Area:  processed.FromArea(),
			Title: "Transferencia rechazada",
			Body: fmt.Sprintf("%s rechazo %d piezas de %s",
				processed.ToArea().DisplayName(), processed.Pieces(), trackedUnit.Folio()),
			UnitID: processed.UnitID().String(),
		})
	}
}

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

// PauseUnitCommandHandler handles putting an active order on hold.
//
// The custody guard is strict: the caller's area must hold every piece of
// the order. An area holding a fraction cannot stop work it does not own.
type PauseUnitCommandHandler struct {
	uowFactory UnitUoWFactory
	roles      ports.RoleResolver
	clock      func() time.Time
}

// NewPauseUnitCommandHandler creates a handler for pausing orders.
func NewPauseUnitCommandHandler(uowFactory UnitUoWFactory, roles ports.RoleResolver) PauseUnitCommandHandler {
	return PauseUnitCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		clock:      time.Now,
	}
}

// Handle processes the pause command.
func (h PauseUnitCommandHandler) Handle(ctx context.Context, command PauseUnitCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	callerArea, err := h.roles.AreaOf(ctx, command.PausedBy())
	if err != nil {
		return err
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

	distribution, err := uow.LedgerRepository().GetDistribution(ctx, command.UnitID())
	if err != nil {
		return err
	}
	if !distribution.Holds(callerArea, trackedUnit.TotalPieces()) {
		return errs.NewInsufficientCustodyError(
			callerArea.String(), distribution.CustodyOf(callerArea), trackedUnit.TotalPieces())
	}

	if err = trackedUnit.Pause(); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, trackedUnit); err != nil {
		return err
	}

	event, err := history.NewEvent(
		kernel.NewUUID(), command.UnitID(), history.ActionPaused,
		fmt.Sprintf("Orden pausada en %s: %s", callerArea.DisplayName(), command.Reason()),
		command.PausedBy(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"
	"tracker/internal/core/domain/model/unit"
)

// CreateUnitCommandHandler handles the business logic for unit registration.
// Creates the unit, seeds its single ledger record, and opens its history
// timeline in one transaction.
type CreateUnitCommandHandler struct {
	uowFactory UnitUoWFactory
	clock      func() time.Time
}

// NewCreateUnitCommandHandler creates a handler for unit registration.
func NewCreateUnitCommandHandler(uowFactory UnitUoWFactory) CreateUnitCommandHandler {
	return CreateUnitCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the unit registration command.
// Seeds the ledger with a single record carrying all pieces in the initial
// area, so piece conservation holds from the first commit.
func (h CreateUnitCommandHandler) Handle(ctx context.Context, command CreateUnitCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	now := h.clock()

	newUnit, err := unit.NewUnit(
		command.UnitID(), command.Kind(), command.Folio(), command.TotalPieces(),
		command.InitialArea(), command.CreatedBy(), now,
	)
	if err != nil {
		return err
	}

	seed, err := ledger.NewRecord(newUnit.ID(), command.InitialArea(), command.TotalPieces(), now)
	if err != nil {
		return err
	}

	description := fmt.Sprintf("%s %s creada: %d piezas en %s",
		kindNoun(command.Kind()), command.Folio(), command.TotalPieces(),
		command.InitialArea().DisplayName())
	event, err := history.NewEvent(
		kernel.NewUUID(), newUnit.ID(), history.ActionCreated, description,
		command.CreatedBy(), now,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UnitRepository().Add(ctx, newUnit); err != nil {
		return err
	}

	if err = uow.LedgerRepository().Add(ctx, seed); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// kindNoun returns the Spanish noun used in history descriptions.
func kindNoun(kind unit.Kind) string {
	if kind == unit.KindReposition {
		return "Reposicion"
	}
	return "Orden"
}

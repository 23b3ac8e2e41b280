package commands_test

import (
	"errors"
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"
	"tracker/internal/core/domain/model/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUnitCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUnitCommand(
		kernel.NewUUID(), unit.KindOrder, "OP-2024-0001", 120, kernel.AreaCorte, kernel.NewUUID(),
	)
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	ledgerRepo := new(MockLedgerRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Add", ctx, mock.AnythingOfType("*unit.Unit")).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Record")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUnitCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	unitRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	// The seeded ledger record carries every piece in the initial area.
	seeded := ledgerRepo.Calls[0].Arguments[1].(*ledger.Record)
	assert.Equal(t, 120, seeded.Pieces())
	assert.Equal(t, kernel.AreaCorte, seeded.Area())

	created := unitRepo.Calls[0].Arguments[1].(*unit.Unit)
	assert.Equal(t, unit.Active, created.Status())
	require.NotNil(t, created.CurrentArea())
	assert.Equal(t, kernel.AreaCorte, *created.CurrentArea())

	event := historyRepo.Calls[0].Arguments[1].(*history.Event)
	assert.Equal(t, history.ActionCreated, event.Action())
}

func TestCreateUnitCommandHandler_Handle_RepositionStartsPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUnitCommand(
		kernel.NewUUID(), unit.KindReposition, "RP-2024-0042", 6, kernel.AreaCalidad, kernel.NewUUID(),
	)
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	ledgerRepo := new(MockLedgerRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Add", ctx, mock.AnythingOfType("*unit.Unit")).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Record")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUnitCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	created := unitRepo.Calls[0].Arguments[1].(*unit.Unit)
	assert.Equal(t, unit.Pending, created.Status())
}

func TestCreateUnitCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateUnitCommand // not constructed properly

	factory := new(MockUnitUoWFactory)
	handler := commands.NewCreateUnitCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateUnitCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateUnitCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUnitCommand(
		kernel.NewUUID(), unit.KindOrder, "OP-2024-0002", 50, kernel.AreaCorte, kernel.NewUUID(),
	)
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Add", ctx, mock.AnythingOfType("*unit.Unit")).Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUnitCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "insert error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

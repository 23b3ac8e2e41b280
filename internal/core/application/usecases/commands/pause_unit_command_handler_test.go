package commands_test

import (
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPauseUnitCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testUnit := makeActiveOrder(t, 100)
	testDistribution := makeDistribution(t, testUnit.ID(), map[kernel.Area]int{kernel.AreaCorte: 100})

	pausedBy := kernel.NewUUID()
	cmd, err := commands.NewPauseUnitCommand(testUnit.ID(), pausedBy, "esperando tela del proveedor")
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	ledgerRepo := new(MockLedgerRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("GetDistribution", ctx, testUnit.ID()).Return(testDistribution, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Update", ctx, testUnit).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	roles := new(MockRoleResolver)
	roles.On("AreaOf", ctx, pausedBy).Return(kernel.AreaCorte, nil).Once()

	handler := commands.NewPauseUnitCommandHandler(factory, roles)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	assert.Equal(t, unit.Paused, testUnit.Status())

	event := historyRepo.Calls[0].Arguments[1].(*history.Event)
	assert.Equal(t, history.ActionPaused, event.Action())
	assert.Contains(t, event.Description(), "esperando tela del proveedor")
}

func TestPauseUnitCommandHandler_Handle_PartialCustodyIsRefused(t *testing.T) {
	ctx := t.Context()

	testUnit := makeActiveOrder(t, 100)
	// Corte only holds 60 of the 100 pieces.
	testDistribution := makeDistribution(t, testUnit.ID(), map[kernel.Area]int{
		kernel.AreaCorte:   60,
		kernel.AreaBordado: 40,
	})

	pausedBy := kernel.NewUUID()
	cmd, err := commands.NewPauseUnitCommand(testUnit.ID(), pausedBy, "esperando tela del proveedor")
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("GetDistribution", ctx, testUnit.ID()).Return(testDistribution, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	roles := new(MockRoleResolver)
	roles.On("AreaOf", ctx, pausedBy).Return(kernel.AreaCorte, nil).Once()

	handler := commands.NewPauseUnitCommandHandler(factory, roles)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientCustody)
	assert.Equal(t, unit.Active, testUnit.Status())
	unitRepo.AssertNotCalled(t, "Update", ctx, testUnit)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPauseUnitCommandHandler_Handle_ShortReasonIsRejected(t *testing.T) {
	_, err := commands.NewPauseUnitCommand(kernel.NewUUID(), kernel.NewUUID(), "corto")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

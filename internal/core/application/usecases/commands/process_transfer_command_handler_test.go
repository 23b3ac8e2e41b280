package commands_test

import (
	"testing"
	"time"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"
	"tracker/internal/core/domain/model/transfer"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeActiveOrder(t *testing.T, totalPieces int) *unit.Unit {
	t.Helper()
	u, err := unit.NewUnit(
		kernel.NewUUID(), unit.KindOrder, "OP-2024-0100", totalPieces,
		kernel.AreaCorte, kernel.NewUUID(), time.Now(),
	)
	require.NoError(t, err)
	return u
}

func makeDistribution(t *testing.T, unitID kernel.UUID, custody map[kernel.Area]int) *ledger.Distribution {
	t.Helper()
	records := make([]*ledger.Record, 0, len(custody))
	for area, pieces := range custody {
		record, err := ledger.NewRecord(unitID, area, pieces, time.Now())
		require.NoError(t, err)
		records = append(records, record)
	}
	d, err := ledger.NewDistribution(unitID, records)
	require.NoError(t, err)
	return d
}

func makePendingTransfer(t *testing.T, unitID kernel.UUID, from, to kernel.Area, pieces int) *transfer.Transfer {
	t.Helper()
	tr, err := transfer.NewTransfer(
		kernel.NewUUID(), unitID, from, to, pieces, kernel.NewUUID(), time.Now(),
	)
	require.NoError(t, err)
	return tr
}

func TestProcessTransferCommandHandler_Handle_AcceptFullTransfer(t *testing.T) {
	ctx := t.Context()

	testUnit := makeActiveOrder(t, 100)
	testTransfer := makePendingTransfer(t, testUnit.ID(), kernel.AreaCorte, kernel.AreaBordado, 100)
	testDistribution := makeDistribution(t, testUnit.ID(), map[kernel.Area]int{kernel.AreaCorte: 100})

	cmd, err := commands.NewProcessTransferCommand(testTransfer.ID(), true, kernel.NewUUID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	ledgerRepo := new(MockLedgerRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("Get", ctx, testTransfer.ID()).Return(testTransfer, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("GetDistribution", ctx, testUnit.ID()).Return(testDistribution, nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("UpdateFromPending", ctx, testTransfer).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("SetPieces", ctx, testUnit.ID(), kernel.AreaCorte, 0).Return(nil).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Record")).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Update", ctx, testUnit).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()
	sink := new(MockNotificationSink)

	handler := commands.NewProcessTransferCommandHandler(factory, sink)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	transferRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)

	assert.Equal(t, transfer.StatusAccepted, testTransfer.Status())
	require.NotNil(t, testUnit.CurrentArea())
	assert.Equal(t, kernel.AreaBordado, *testUnit.CurrentArea())

	// New destination row carries the full count.
	added := ledgerRepo.Calls[2].Arguments[1].(*ledger.Record)
	assert.Equal(t, kernel.AreaBordado, added.Area())
	assert.Equal(t, 100, added.Pieces())

	event := historyRepo.Calls[0].Arguments[1].(*history.Event)
	assert.Equal(t, history.ActionTransferAccepted, event.Action())
	assert.NotContains(t, event.Description(), "parcial")

	// Source area is told; no partial warning for a full transfer.
	require.Len(t, sink.Notifications, 1)
	assert.Equal(t, kernel.AreaCorte, sink.Notifications[0].Area)
}

func TestProcessTransferCommandHandler_Handle_AcceptPartialTransfer(t *testing.T) {
	ctx := t.Context()

	testUnit := makeActiveOrder(t, 100)
	testTransfer := makePendingTransfer(t, testUnit.ID(), kernel.AreaCorte, kernel.AreaBordado, 30)
	testDistribution := makeDistribution(t, testUnit.ID(), map[kernel.Area]int{kernel.AreaCorte: 100})

	cmd, err := commands.NewProcessTransferCommand(testTransfer.ID(), true, kernel.NewUUID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	ledgerRepo := new(MockLedgerRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("Get", ctx, testTransfer.ID()).Return(testTransfer, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("GetDistribution", ctx, testUnit.ID()).Return(testDistribution, nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("UpdateFromPending", ctx, testTransfer).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("SetPieces", ctx, testUnit.ID(), kernel.AreaCorte, 70).Return(nil).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Record")).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Update", ctx, testUnit).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()
	sink := new(MockNotificationSink)

	handler := commands.NewProcessTransferCommandHandler(factory, sink)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Split custody: no single holder anymore.
	assert.Nil(t, testUnit.CurrentArea())

	event := historyRepo.Calls[0].Arguments[1].(*history.Event)
	assert.Contains(t, event.Description(), "(transferencia parcial)")

	// Source notified of acceptance, destination warned about the split
	// with the exact counts and the pause restriction.
	require.Len(t, sink.Notifications, 2)
	assert.Equal(t, kernel.AreaCorte, sink.Notifications[0].Area)
	assert.Equal(t, kernel.AreaBordado, sink.Notifications[1].Area)
	assert.Equal(t, "Transferencia parcial", sink.Notifications[1].Title)
	assert.Contains(t, sink.Notifications[1].Body, "30 de 100 piezas")
	assert.Contains(t, sink.Notifications[1].Body, "no puede pausar")
}

func TestProcessTransferCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()

	testUnit := makeActiveOrder(t, 100)
	testTransfer := makePendingTransfer(t, testUnit.ID(), kernel.AreaCorte, kernel.AreaBordado, 40)

	cmd, err := commands.NewProcessTransferCommand(testTransfer.ID(), false, kernel.NewUUID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("Get", ctx, testTransfer.ID()).Return(testTransfer, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("UpdateFromPending", ctx, testTransfer).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()
	sink := new(MockNotificationSink)

	handler := commands.NewProcessTransferCommandHandler(factory, sink)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, transfer.StatusRejected, testTransfer.Status())

	// The ledger was never touched.
	uow.AssertNotCalled(t, "LedgerRepository")

	event := historyRepo.Calls[0].Arguments[1].(*history.Event)
	assert.Equal(t, history.ActionTransferRejected, event.Action())

	require.Len(t, sink.Notifications, 1)
	assert.Equal(t, "Transferencia rechazada", sink.Notifications[0].Title)
}

func TestProcessTransferCommandHandler_Handle_CustodyRecheckFails(t *testing.T) {
	ctx := t.Context()

	testUnit := makeActiveOrder(t, 100)
	testTransfer := makePendingTransfer(t, testUnit.ID(), kernel.AreaCorte, kernel.AreaBordado, 60)
	// A competing transfer drained corte after this one was proposed.
	testDistribution := makeDistribution(t, testUnit.ID(), map[kernel.Area]int{
		kernel.AreaCorte:    20,
		kernel.AreaEnsamble: 80,
	})

	cmd, err := commands.NewProcessTransferCommand(testTransfer.ID(), true, kernel.NewUUID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("Get", ctx, testTransfer.ID()).Return(testTransfer, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("GetDistribution", ctx, testUnit.ID()).Return(testDistribution, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()
	sink := new(MockNotificationSink)

	handler := commands.NewProcessTransferCommandHandler(factory, sink)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientCustody)
	assert.Equal(t, transfer.StatusPending, testTransfer.Status())
	transferRepo.AssertNotCalled(t, "UpdateFromPending", ctx, testTransfer)
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, sink.Notifications)
}

func TestProcessTransferCommandHandler_Handle_AlreadyProcessed(t *testing.T) {
	ctx := t.Context()

	testUnit := makeActiveOrder(t, 100)
	testTransfer := makePendingTransfer(t, testUnit.ID(), kernel.AreaCorte, kernel.AreaBordado, 100)
	require.NoError(t, testTransfer.Accept(kernel.NewUUID(), time.Now()))
	testDistribution := makeDistribution(t, testUnit.ID(), map[kernel.Area]int{kernel.AreaCorte: 100})

	cmd, err := commands.NewProcessTransferCommand(testTransfer.ID(), true, kernel.NewUUID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("Get", ctx, testTransfer.ID()).Return(testTransfer, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("GetDistribution", ctx, testUnit.ID()).Return(testDistribution, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()
	sink := new(MockNotificationSink)

	handler := commands.NewProcessTransferCommandHandler(factory, sink)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestProcessTransferCommandHandler_Handle_RepositionBeginsProcessing(t *testing.T) {
	ctx := t.Context()

	testUnit, err := unit.NewUnit(
		kernel.NewUUID(), unit.KindReposition, "RP-2024-0007", 10,
		kernel.AreaCalidad, kernel.NewUUID(), time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, testUnit.Approve(kernel.NewUUID(), true, time.Now()))

	testTransfer := makePendingTransfer(t, testUnit.ID(), kernel.AreaCalidad, kernel.AreaCorte, 10)
	testDistribution := makeDistribution(t, testUnit.ID(), map[kernel.Area]int{kernel.AreaCalidad: 10})

	cmd, err := commands.NewProcessTransferCommand(testTransfer.ID(), true, kernel.NewUUID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	transferRepo := new(MockTransferRepository)
	ledgerRepo := new(MockLedgerRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("Get", ctx, testTransfer.ID()).Return(testTransfer, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", ctx, testUnit.ID()).Return(testUnit, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("GetDistribution", ctx, testUnit.ID()).Return(testDistribution, nil).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("UpdateFromPending", ctx, testTransfer).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("SetPieces", ctx, testUnit.ID(), kernel.AreaCalidad, 0).Return(nil).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Record")).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Update", ctx, testUnit).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()
	sink := new(MockNotificationSink)

	handler := commands.NewProcessTransferCommandHandler(factory, sink)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, unit.InProcess, testUnit.Status())
}

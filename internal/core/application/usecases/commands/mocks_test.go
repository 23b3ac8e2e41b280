package commands_test

import (
	"context"
	"time"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/areatime"
	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"
	"tracker/internal/core/domain/model/transfer"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUnitRepository struct{ mock.Mock }

func (m *MockUnitRepository) Add(ctx context.Context, aggregate *unit.Unit) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUnitRepository) Update(ctx context.Context, aggregate *unit.Unit) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUnitRepository) Get(ctx context.Context, id kernel.UUID) (*unit.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*unit.Unit), args.Error(1)
}

func (m *MockUnitRepository) GetByFolio(ctx context.Context, folio string) (*unit.Unit, error) {
	args := m.Called(ctx, folio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*unit.Unit), args.Error(1)
}

func (m *MockUnitRepository) GetAll(ctx context.Context, filter ports.UnitFilter) ([]*unit.Unit, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*unit.Unit), args.Error(1)
}

func (m *MockUnitRepository) GetAllHeldByArea(ctx context.Context, area kernel.Area) ([]*unit.Unit, error) {
	args := m.Called(ctx, area)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*unit.Unit), args.Error(1)
}

type MockTransferRepository struct{ mock.Mock }

func (m *MockTransferRepository) Add(ctx context.Context, aggregate *transfer.Transfer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTransferRepository) UpdateFromPending(ctx context.Context, aggregate *transfer.Transfer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTransferRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Transfer), args.Error(1)
}

func (m *MockTransferRepository) GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*transfer.Transfer, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transfer.Transfer), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, record *ledger.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) SetPieces(ctx context.Context, unitID kernel.UUID, area kernel.Area, pieces int) error {
	args := m.Called(ctx, unitID, area, pieces)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetDistribution(ctx context.Context, unitID kernel.UUID) (*ledger.Distribution, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Distribution), args.Error(1)
}

type MockTimerRepository struct{ mock.Mock }

func (m *MockTimerRepository) Add(ctx context.Context, timer *areatime.Timer) error {
	args := m.Called(ctx, timer)
	return args.Error(0)
}

func (m *MockTimerRepository) Update(ctx context.Context, timer *areatime.Timer) error {
	args := m.Called(ctx, timer)
	return args.Error(0)
}

func (m *MockTimerRepository) Get(ctx context.Context, unitID kernel.UUID, area kernel.Area) (*areatime.Timer, error) {
	args := m.Called(ctx, unitID, area)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*areatime.Timer), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, event *history.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUoW satisfies every narrow unit-of-work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UnitRepository() ports.UnitRepository {
	args := m.Called()
	return args.Get(0).(ports.UnitRepository)
}

func (m *MockUoW) TransferRepository() ports.TransferRepository {
	args := m.Called()
	return args.Get(0).(ports.TransferRepository)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockUoW) TimerRepository() ports.TimerRepository {
	args := m.Called()
	return args.Get(0).(ports.TimerRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockUnitUoWFactory struct{ mock.Mock }

func (m *MockUnitUoWFactory) Create() commands.UnitUoW {
	args := m.Called()
	return args.Get(0).(commands.UnitUoW)
}

type MockTransferUoWFactory struct{ mock.Mock }

func (m *MockTransferUoWFactory) Create() commands.TransferUoW {
	args := m.Called()
	return args.Get(0).(commands.TransferUoW)
}

type MockTimerUoWFactory struct{ mock.Mock }

func (m *MockTimerUoWFactory) Create() commands.TimerUoW {
	args := m.Called()
	return args.Get(0).(commands.TimerUoW)
}

type MockRoleResolver struct{ mock.Mock }

func (m *MockRoleResolver) AreaOf(ctx context.Context, userID kernel.UUID) (kernel.Area, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(kernel.Area), args.Error(1)
}

func (m *MockRoleResolver) IsPrivileged(ctx context.Context, userID kernel.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockNotificationSink records emitted notifications for assertions.
type MockNotificationSink struct {
	Notifications []ports.Notification
}

func (m *MockNotificationSink) Emit(_ context.Context, notification ports.Notification) {
	m.Notifications = append(m.Notifications, notification)
}

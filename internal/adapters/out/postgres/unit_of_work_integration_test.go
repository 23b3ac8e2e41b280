package postgres_test

import (
	"context"
	"testing"
	"time"

	"tracker/internal/adapters/out/postgres"
	"tracker/internal/adapters/out/postgres/historyrepo"
	"tracker/internal/adapters/out/postgres/ledgerrepo"
	"tracker/internal/adapters/out/postgres/timerrepo"
	"tracker/internal/adapters/out/postgres/transferrepo"
	"tracker/internal/adapters/out/postgres/unitrepo"
	"tracker/internal/core/domain/model/areatime"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"
	"tracker/internal/core/domain/model/transfer"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&unitrepo.UnitDTO{},
		&transferrepo.TransferDTO{},
		&ledgerrepo.RecordDTO{},
		&timerrepo.TimerDTO{},
		&historyrepo.EventDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE units, transfers, piece_records, time_records, history_events CASCADE",
	).Error
	suite.Require().NoError(err)
}

// seedUnit persists an order with its full custody in the initial area and
// returns it.
func (suite *UnitOfWorkTestSuite) seedUnit(folio string, totalPieces int, area kernel.Area) *unit.Unit {
	ctx := context.Background()

	trackedUnit, err := unit.NewUnit(
		kernel.NewUUID(), unit.KindOrder, folio, totalPieces, area,
		kernel.NewUUID(), time.Now(),
	)
	suite.Require().NoError(err)

	record, err := ledger.NewRecord(trackedUnit.ID(), area, totalPieces, time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UnitRepository().Add(ctx, trackedUnit))
	suite.Require().NoError(uow.LedgerRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	return trackedUnit
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsUnitAndLedgerTogether() {
	ctx := context.Background()

	trackedUnit := suite.seedUnit("OP-2024-0001", 120, kernel.AreaCorte)

	uow := suite.factory.Create()
	stored, err := uow.UnitRepository().Get(ctx, trackedUnit.ID())
	suite.Require().NoError(err)
	suite.Equal("OP-2024-0001", stored.Folio())
	suite.Require().NotNil(stored.CurrentArea())
	suite.Equal(kernel.AreaCorte, *stored.CurrentArea())

	distribution, err := uow.LedgerRepository().GetDistribution(ctx, trackedUnit.ID())
	suite.Require().NoError(err)
	suite.Equal(120, distribution.Total())
	suite.Equal(120, distribution.CustodyOf(kernel.AreaCorte))
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsEveryWrite() {
	ctx := context.Background()

	trackedUnit, err := unit.NewUnit(
		kernel.NewUUID(), unit.KindOrder, "OP-2024-0002", 50, kernel.AreaCorte,
		kernel.NewUUID(), time.Now(),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UnitRepository().Add(ctx, trackedUnit))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().UnitRepository().Get(ctx, trackedUnit.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestPartialTransfer_SplitsCustodyAndConservesPieces() {
	ctx := context.Background()

	trackedUnit := suite.seedUnit("OP-2024-0003", 100, kernel.AreaCorte)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(
		uow.LedgerRepository().SetPieces(ctx, trackedUnit.ID(), kernel.AreaCorte, 60))

	destination, err := ledger.NewRecord(trackedUnit.ID(), kernel.AreaBordado, 40, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.LedgerRepository().Add(ctx, destination))

	suite.Require().NoError(uow.Commit(ctx))

	distribution, err := suite.factory.Create().LedgerRepository().
		GetDistribution(ctx, trackedUnit.ID())
	suite.Require().NoError(err)
	suite.Equal(100, distribution.Total())
	suite.Equal(60, distribution.CustodyOf(kernel.AreaCorte))
	suite.Equal(40, distribution.CustodyOf(kernel.AreaBordado))
	suite.Nil(distribution.SingleHolder())
}

func (suite *UnitOfWorkTestSuite) TestSetPieces_ZeroDeletesTheRow() {
	ctx := context.Background()

	trackedUnit := suite.seedUnit("OP-2024-0004", 80, kernel.AreaCorte)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(
		uow.LedgerRepository().SetPieces(ctx, trackedUnit.ID(), kernel.AreaCorte, 0))

	destination, err := ledger.NewRecord(trackedUnit.ID(), kernel.AreaBordado, 80, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.LedgerRepository().Add(ctx, destination))
	suite.Require().NoError(uow.Commit(ctx))

	distribution, err := suite.factory.Create().LedgerRepository().
		GetDistribution(ctx, trackedUnit.ID())
	suite.Require().NoError(err)
	suite.Len(distribution.Records(), 1)
	suite.Require().NotNil(distribution.SingleHolder())
	suite.Equal(kernel.AreaBordado, *distribution.SingleHolder())
}

func (suite *UnitOfWorkTestSuite) TestUpdateFromPending_SecondDecisionLoses() {
	ctx := context.Background()

	trackedUnit := suite.seedUnit("OP-2024-0005", 100, kernel.AreaCorte)

	pending, err := transfer.NewTransfer(
		kernel.NewUUID(), trackedUnit.ID(), kernel.AreaCorte, kernel.AreaBordado,
		100, kernel.NewUUID(), time.Now(),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TransferRepository().Add(ctx, pending))
	suite.Require().NoError(uow.Commit(ctx))

	accepted, err := suite.factory.Create().TransferRepository().Get(ctx, pending.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(accepted.Accept(kernel.NewUUID(), time.Now()))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(first.TransferRepository().UpdateFromPending(ctx, accepted))
	suite.Require().NoError(first.Commit(ctx))

	// The stored row is no longer pending, so a second decision must fail.
	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	err = second.TransferRepository().UpdateFromPending(ctx, accepted)
	suite.Require().ErrorIs(err, errs.ErrInvalidState)
	suite.Require().NoError(second.Rollback(ctx))

	stored, err := suite.factory.Create().TransferRepository().Get(ctx, pending.ID())
	suite.Require().NoError(err)
	suite.Equal(transfer.StatusAccepted, stored.Status())
}

func (suite *UnitOfWorkTestSuite) TestTimerAdd_SecondRecordForSameAreaRejected() {
	ctx := context.Background()

	trackedUnit := suite.seedUnit("OP-2024-0006", 40, kernel.AreaCorte)

	timer, err := areatime.NewLiveTimer(
		trackedUnit.ID(), kernel.AreaCorte, kernel.NewUUID(), time.Now(),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TimerRepository().Add(ctx, timer))
	suite.Require().NoError(uow.Commit(ctx))

	duplicate, err := areatime.NewLiveTimer(
		trackedUnit.ID(), kernel.AreaCorte, kernel.NewUUID(), time.Now(),
	)
	suite.Require().NoError(err)

	retry := suite.factory.Create()
	suite.Require().NoError(retry.Begin(ctx))
	err = retry.TimerRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrDuplicateTimeRecord)
	suite.Require().NoError(retry.Rollback(ctx))
}

func (suite *UnitOfWorkTestSuite) TestPendingTransfersOlderThan_FiltersByAge() {
	ctx := context.Background()

	trackedUnit := suite.seedUnit("OP-2024-0007", 100, kernel.AreaCorte)

	stale, err := transfer.NewTransfer(
		kernel.NewUUID(), trackedUnit.ID(), kernel.AreaCorte, kernel.AreaBordado,
		100, kernel.NewUUID(), time.Now().Add(-48*time.Hour),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TransferRepository().Add(ctx, stale))
	suite.Require().NoError(uow.Commit(ctx))

	found, err := suite.factory.Create().TransferRepository().
		GetAllPendingOlderThan(ctx, time.Now().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(found[0].ID().IsEqual(stale.ID()))

	none, err := suite.factory.Create().TransferRepository().
		GetAllPendingOlderThan(ctx, time.Now().Add(-72*time.Hour))
	suite.Require().NoError(err)
	suite.Empty(none)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkTestSuite))
}

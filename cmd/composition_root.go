package cmd

import (
	"log/slog"
	"os"
	"time"

	httpin "tracker/internal/adapters/in/http"
	"tracker/internal/adapters/out/notify"
	"tracker/internal/adapters/out/postgres"
	"tracker/internal/adapters/out/roles"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/jobs"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	roles      *roles.CachedResolver
	sink       *notify.WebPushSink
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	sink := notify.NewWebPushSink(
		configs.NotifyPoolSize,
		gormDB,
		&webpush.Options{
			Subscriber:      configs.VapidSubscriber,
			VAPIDPublicKey:  configs.VapidPublicKey,
			VAPIDPrivateKey: configs.VapidPrivateKey,
			TTL:             3600,
		},
		logger,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		roles:      roles.NewCachedResolver(gormDB, mustDuration(configs.RoleCacheTTL, 5*time.Minute)),
		sink:       sink,
		logger:     logger,
	}
}

// Logger returns the application logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// NotificationSink returns the push delivery sink. Call its Start before
// serving traffic.
func (c *CompositionRoot) NotificationSink() *notify.WebPushSink {
	return c.sink
}

func (c *CompositionRoot) unitUoWFactory() commands.UnitUoWFactory {
	return FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) transferUoWFactory() commands.TransferUoWFactory {
	return FuncTransferUoWFactory(func() commands.TransferUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) timerUoWFactory() commands.TimerUoWFactory {
	return FuncTimerUoWFactory(func() commands.TimerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateUnitCommandHandler() commands.CreateUnitCommandHandler {
	return commands.NewCreateUnitCommandHandler(c.unitUoWFactory())
}

func (c *CompositionRoot) CreateProposeTransferCommandHandler() commands.ProposeTransferCommandHandler {
	return commands.NewProposeTransferCommandHandler(c.transferUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateProcessTransferCommandHandler() commands.ProcessTransferCommandHandler {
	return commands.NewProcessTransferCommandHandler(c.transferUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreatePauseUnitCommandHandler() commands.PauseUnitCommandHandler {
	return commands.NewPauseUnitCommandHandler(c.unitUoWFactory(), c.roles)
}

func (c *CompositionRoot) CreateResumeUnitCommandHandler() commands.ResumeUnitCommandHandler {
	return commands.NewResumeUnitCommandHandler(c.unitUoWFactory())
}

func (c *CompositionRoot) CreateCompleteUnitCommandHandler() commands.CompleteUnitCommandHandler {
	return commands.NewCompleteUnitCommandHandler(c.unitUoWFactory(), c.roles)
}

func (c *CompositionRoot) CreateApproveRepositionCommandHandler() commands.ApproveRepositionCommandHandler {
	return commands.NewApproveRepositionCommandHandler(c.unitUoWFactory(), c.roles, c.sink)
}

func (c *CompositionRoot) CreateRequestCompletionCommandHandler() commands.RequestCompletionCommandHandler {
	return commands.NewRequestCompletionCommandHandler(c.unitUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateCancelUnitCommandHandler() commands.CancelUnitCommandHandler {
	return commands.NewCancelUnitCommandHandler(c.unitUoWFactory(), c.roles, c.sink)
}

func (c *CompositionRoot) CreateDeleteUnitCommandHandler() commands.DeleteUnitCommandHandler {
	return commands.NewDeleteUnitCommandHandler(c.unitUoWFactory(), c.roles, c.sink)
}

func (c *CompositionRoot) CreateStartTimerCommandHandler() commands.StartTimerCommandHandler {
	return commands.NewStartTimerCommandHandler(c.timerUoWFactory())
}

func (c *CompositionRoot) CreateStopTimerCommandHandler() commands.StopTimerCommandHandler {
	return commands.NewStopTimerCommandHandler(c.timerUoWFactory())
}

func (c *CompositionRoot) CreateSetManualTimerCommandHandler() commands.SetManualTimerCommandHandler {
	return commands.NewSetManualTimerCommandHandler(c.timerUoWFactory())
}

func (c *CompositionRoot) CreateRemindPendingTransfersCommandHandler() commands.RemindPendingTransfersCommandHandler {
	return commands.NewRemindPendingTransfersCommandHandler(c.transferUoWFactory(), c.sink)
}

func (c *CompositionRoot) CreateGetUnitQueryHandler() queries.GetUnitQueryHandler {
	return queries.NewGetUnitQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnitsByAreaQueryHandler() queries.GetUnitsByAreaQueryHandler {
	return queries.NewGetUnitsByAreaQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAreaRecordsQueryHandler() queries.GetAreaRecordsQueryHandler {
	return queries.NewGetAreaRecordsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingTransfersQueryHandler() queries.GetPendingTransfersQueryHandler {
	return queries.NewGetPendingTransfersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnitHistoryQueryHandler() queries.GetUnitHistoryQueryHandler {
	return queries.NewGetUnitHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnitTimersQueryHandler() queries.GetUnitTimersQueryHandler {
	return queries.NewGetUnitTimersQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over every use case.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateUnit:        c.CreateCreateUnitCommandHandler(),
		ProposeTransfer:   c.CreateProposeTransferCommandHandler(),
		ProcessTransfer:   c.CreateProcessTransferCommandHandler(),
		PauseUnit:         c.CreatePauseUnitCommandHandler(),
		ResumeUnit:        c.CreateResumeUnitCommandHandler(),
		CompleteUnit:      c.CreateCompleteUnitCommandHandler(),
		ApproveReposition: c.CreateApproveRepositionCommandHandler(),
		RequestCompletion: c.CreateRequestCompletionCommandHandler(),
		CancelUnit:        c.CreateCancelUnitCommandHandler(),
		DeleteUnit:        c.CreateDeleteUnitCommandHandler(),
		StartTimer:        c.CreateStartTimerCommandHandler(),
		StopTimer:         c.CreateStopTimerCommandHandler(),
		SetManualTimer:    c.CreateSetManualTimerCommandHandler(),

		GetUnit:             c.CreateGetUnitQueryHandler(),
		GetUnitsByArea:      c.CreateGetUnitsByAreaQueryHandler(),
		GetAreaRecords:      c.CreateGetAreaRecordsQueryHandler(),
		GetPendingTransfers: c.CreateGetPendingTransfersQueryHandler(),
		GetUnitHistory:      c.CreateGetUnitHistoryQueryHandler(),
		GetUnitTimers:       c.CreateGetUnitTimersQueryHandler(),
	}, c.sink)
}

// CreateJobManager assembles the scheduled jobs.
func (c *CompositionRoot) CreateJobManager(configs Config) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRemindPendingTransfersCommandHandler(),
		configs.ReminderSchedule,
		mustDuration(configs.ReminderAge, 24*time.Hour),
		c.logger,
	)
}

func mustDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

type FuncUnitUoWFactory func() commands.UnitUoW

func (f FuncUnitUoWFactory) Create() commands.UnitUoW {
	return f()
}

type FuncTransferUoWFactory func() commands.TransferUoW

func (f FuncTransferUoWFactory) Create() commands.TransferUoW {
	return f()
}

type FuncTimerUoWFactory func() commands.TimerUoW

func (f FuncTimerUoWFactory) Create() commands.TimerUoW {
	return f()
}

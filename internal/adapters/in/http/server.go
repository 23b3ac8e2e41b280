// Package http exposes the tracking operations over an Echo HTTP API.
// Callers identify themselves with the X-User-ID header; area and privilege
// checks run in the use cases through the role resolver.
package http

import (
	"net/http"

	"tracker/internal/adapters/out/notify"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the calling user's identifier.
const actorHeader = "X-User-ID"

// Handlers bundles every use case the server exposes.
type Handlers struct {
	CreateUnit        commands.CreateUnitCommandHandler
	ProposeTransfer   commands.ProposeTransferCommandHandler
	ProcessTransfer   commands.ProcessTransferCommandHandler
	PauseUnit         commands.PauseUnitCommandHandler
	ResumeUnit        commands.ResumeUnitCommandHandler
	CompleteUnit      commands.CompleteUnitCommandHandler
	ApproveReposition commands.ApproveRepositionCommandHandler
	RequestCompletion commands.RequestCompletionCommandHandler
	CancelUnit        commands.CancelUnitCommandHandler
	DeleteUnit        commands.DeleteUnitCommandHandler
	StartTimer        commands.StartTimerCommandHandler
	StopTimer         commands.StopTimerCommandHandler
	SetManualTimer    commands.SetManualTimerCommandHandler

	GetUnit             queries.GetUnitQueryHandler
	GetUnitsByArea      queries.GetUnitsByAreaQueryHandler
	GetAreaRecords      queries.GetAreaRecordsQueryHandler
	GetPendingTransfers queries.GetPendingTransfersQueryHandler
	GetUnitHistory      queries.GetUnitHistoryQueryHandler
	GetUnitTimers       queries.GetUnitTimersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	sink     *notify.WebPushSink
}

// NewServer creates the HTTP server over the given use cases.
func NewServer(handlers Handlers, sink *notify.WebPushSink) *Server {
	return &Server{handlers: handlers, sink: sink}
}

// RegisterRoutes mounts every endpoint on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/units", s.CreateUnit)
	api.GET("/units/:id", s.GetUnit)
	api.DELETE("/units/:id", s.DeleteUnit)
	api.GET("/units/:id/history", s.GetUnitHistory)
	api.GET("/units/:id/timers", s.GetUnitTimers)

	api.POST("/units/:id/transfers", s.ProposeTransfer)
	api.POST("/transfers/:id/accept", s.AcceptTransfer)
	api.POST("/transfers/:id/reject", s.RejectTransfer)

	api.POST("/units/:id/pause", s.PauseUnit)
	api.POST("/units/:id/resume", s.ResumeUnit)
	api.POST("/units/:id/complete", s.CompleteUnit)
	api.POST("/units/:id/approve", s.ApproveReposition)
	api.POST("/units/:id/request-completion", s.RequestCompletion)
	api.POST("/units/:id/cancel", s.CancelUnit)

	api.POST("/units/:id/timers/:area/start", s.StartTimer)
	api.POST("/units/:id/timers/:area/stop", s.StopTimer)
	api.POST("/units/:id/timers/:area/manual", s.SetManualTime)

	api.GET("/areas/:area/units", s.GetUnitsByArea)
	api.GET("/areas/:area/records", s.GetAreaRecords)
	api.GET("/areas/:area/transfers/pending", s.GetPendingTransfers)

	api.POST("/subscriptions", s.RegisterSubscription)
}

// actor extracts and validates the calling user's identifier.
func actor(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(actorHeader)
	if header == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(actorHeader)
	}
	return kernel.UUIDFromString(header)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func pathArea(ctx echo.Context, name string) (kernel.Area, error) {
	return kernel.NewArea(ctx.Param(name))
}

// CreateUnit handles POST /api/v1/units.
func (s *Server) CreateUnit(ctx echo.Context) error {
	createdBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request CreateUnitRequest
	if err = ctx.Bind(&request); err != nil {
		return fail(ctx, errs.NewValueIsInvalidError("body"))
	}

	kind, err := unit.KindFromString(request.Kind)
	if err != nil {
		return fail(ctx, err)
	}
	initialArea, err := kernel.NewArea(request.InitialArea)
	if err != nil {
		return fail(ctx, err)
	}

	unitID := kernel.NewUUID()
	cmd, err := commands.NewCreateUnitCommand(
		unitID, kind, request.Folio, request.TotalPieces, initialArea, createdBy,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CreateUnit.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: unitID.String()})
}

// GetUnit handles GET /api/v1/units/:id.
func (s *Server) GetUnit(ctx echo.Context) error {
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetUnitQuery(unitID)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.handlers.GetUnit.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := UnitResponse{
		ID:           result.ID.String(),
		Kind:         result.Kind,
		Folio:        result.Folio,
		TotalPieces:  result.TotalPieces,
		Status:       result.Status,
		CreatedAt:    result.CreatedAt,
		CompletedAt:  result.CompletedAt,
		Distribution: make([]AreaPieces, 0, len(result.Distribution)),
	}
	if result.CurrentArea != nil {
		area := result.CurrentArea.String()
		response.CurrentArea = &area
	}
	for _, row := range result.Distribution {
		response.Distribution = append(response.Distribution, AreaPieces{
			Area:      row.Area.String(),
			Pieces:    row.Pieces,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteUnit handles DELETE /api/v1/units/:id.
func (s *Server) DeleteUnit(ctx echo.Context) error {
	deletedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteUnitCommand(unitID, deletedBy)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.DeleteUnit.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProposeTransfer handles POST /api/v1/units/:id/transfers.
func (s *Server) ProposeTransfer(ctx echo.Context) error {
	proposedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var request ProposeTransferRequest
	if err = ctx.Bind(&request); err != nil {
		return fail(ctx, errs.NewValueIsInvalidError("body"))
	}

	fromArea, err := kernel.NewArea(request.FromArea)
	if err != nil {
		return fail(ctx, err)
	}
	toArea, err := kernel.NewArea(request.ToArea)
	if err != nil {
		return fail(ctx, err)
	}

	transferID := kernel.NewUUID()
	cmd, err := commands.NewProposeTransferCommand(
		transferID, unitID, fromArea, toArea, request.Pieces, proposedBy,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.ProposeTransfer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: transferID.String()})
}

// AcceptTransfer handles POST /api/v1/transfers/:id/accept.
func (s *Server) AcceptTransfer(ctx echo.Context) error {
	return s.processTransfer(ctx, true)
}

// RejectTransfer handles POST /api/v1/transfers/:id/reject.
func (s *Server) RejectTransfer(ctx echo.Context) error {
	return s.processTransfer(ctx, false)
}

func (s *Server) processTransfer(ctx echo.Context, accept bool) error {
	processedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	transferID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewProcessTransferCommand(transferID, accept, processedBy)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.ProcessTransfer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PauseUnit handles POST /api/v1/units/:id/pause.
func (s *Server) PauseUnit(ctx echo.Context) error {
	pausedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var request ReasonRequest
	if err = ctx.Bind(&request); err != nil {
		return fail(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewPauseUnitCommand(unitID, pausedBy, request.Reason)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.PauseUnit.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ResumeUnit handles POST /api/v1/units/:id/resume.
func (s *Server) ResumeUnit(ctx echo.Context) error {
	resumedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewResumeUnitCommand(unitID, resumedBy)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.ResumeUnit.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteUnit handles POST /api/v1/units/:id/complete.
func (s *Server) CompleteUnit(ctx echo.Context) error {
	completedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCompleteUnitCommand(unitID, completedBy)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.CompleteUnit.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ApproveReposition handles POST /api/v1/units/:id/approve.
func (s *Server) ApproveReposition(ctx echo.Context) error {
	approvedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var request ApproveRepositionRequest
	if err = ctx.Bind(&request); err != nil {
		return fail(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewApproveRepositionCommand(unitID, request.Approve, request.Notes, approvedBy)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.ApproveReposition.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RequestCompletion handles POST /api/v1/units/:id/request-completion.
func (s *Server) RequestCompletion(ctx echo.Context) error {
	requestedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var request NotesRequest
	if err = ctx.Bind(&request); err != nil {
		return fail(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewRequestCompletionCommand(unitID, request.Notes, requestedBy)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.RequestCompletion.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// CancelUnit handles POST /api/v1/units/:id/cancel.
func (s *Server) CancelUnit(ctx echo.Context) error {
	canceledBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var request ReasonRequest
	if err = ctx.Bind(&request); err != nil {
		return fail(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewCancelUnitCommand(unitID, request.Reason, canceledBy)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.CancelUnit.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartTimer handles POST /api/v1/units/:id/timers/:area/start.
func (s *Server) StartTimer(ctx echo.Context) error {
	startedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}
	area, err := pathArea(ctx, "area")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewStartTimerCommand(unitID, area, startedBy)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.StartTimer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// StopTimer handles POST /api/v1/units/:id/timers/:area/stop.
func (s *Server) StopTimer(ctx echo.Context) error {
	stoppedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}
	area, err := pathArea(ctx, "area")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewStopTimerCommand(unitID, area, stoppedBy)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.StopTimer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SetManualTime handles POST /api/v1/units/:id/timers/:area/manual.
func (s *Server) SetManualTime(ctx echo.Context) error {
	recordedBy, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}
	area, err := pathArea(ctx, "area")
	if err != nil {
		return fail(ctx, err)
	}

	var request ManualTimeRequest
	if err = ctx.Bind(&request); err != nil {
		return fail(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewSetManualTimerCommand(
		unitID, area,
		request.StartDate, request.StartTime,
		request.EndDate, request.EndTime,
		recordedBy,
	)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.handlers.SetManualTimer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetUnitHistory handles GET /api/v1/units/:id/history.
func (s *Server) GetUnitHistory(ctx echo.Context) error {
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetUnitHistoryQuery(unitID)
	if err != nil {
		return fail(ctx, err)
	}

	events, err := s.handlers.GetUnitHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]HistoryEventResponse, 0, len(events))
	for _, event := range events {
		item := HistoryEventResponse{
			ID:          event.ID.String(),
			Action:      event.Action,
			Description: event.Description,
			Actor:       event.Actor.String(),
			Pieces:      event.Pieces,
			OccurredAt:  event.OccurredAt,
		}
		if event.FromArea != nil {
			area := event.FromArea.String()
			item.FromArea = &area
		}
		if event.ToArea != nil {
			area := event.ToArea.String()
			item.ToArea = &area
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnitTimers handles GET /api/v1/units/:id/timers.
func (s *Server) GetUnitTimers(ctx echo.Context) error {
	unitID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetUnitTimersQuery(unitID)
	if err != nil {
		return fail(ctx, err)
	}

	timers, err := s.handlers.GetUnitTimers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]TimerResponse, 0, len(timers))
	for _, timer := range timers {
		response = append(response, TimerResponse{
			Area:      timer.Area.String(),
			Manual:    timer.Manual,
			StartedAt: timer.StartedAt,
			StoppedAt: timer.StoppedAt,
			Minutes:   timer.Minutes,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnitsByArea handles GET /api/v1/areas/:area/units.
func (s *Server) GetUnitsByArea(ctx echo.Context) error {
	area, err := pathArea(ctx, "area")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetUnitsByAreaQuery(area)
	if err != nil {
		return fail(ctx, err)
	}

	units, err := s.handlers.GetUnitsByArea.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]AreaUnitResponse, 0, len(units))
	for _, item := range units {
		response = append(response, AreaUnitResponse{
			ID:          item.ID.String(),
			Kind:        item.Kind,
			Folio:       item.Folio,
			TotalPieces: item.TotalPieces,
			HeldPieces:  item.HeldPieces,
			Status:      item.Status,
			CreatedAt:   item.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAreaRecords handles GET /api/v1/areas/:area/records.
func (s *Server) GetAreaRecords(ctx echo.Context) error {
	area, err := pathArea(ctx, "area")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetAreaRecordsQuery(area)
	if err != nil {
		return fail(ctx, err)
	}

	records, err := s.handlers.GetAreaRecords.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]AreaRecordResponse, 0, len(records))
	for _, record := range records {
		response = append(response, AreaRecordResponse{
			UnitID: record.UnitID.String(),
			Folio:  record.Folio,
			Pieces: record.Pieces,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingTransfers handles GET /api/v1/areas/:area/transfers/pending.
func (s *Server) GetPendingTransfers(ctx echo.Context) error {
	area, err := pathArea(ctx, "area")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetPendingTransfersQuery(area)
	if err != nil {
		return fail(ctx, err)
	}

	transfers, err := s.handlers.GetPendingTransfers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]PendingTransferResponse, 0, len(transfers))
	for _, transfer := range transfers {
		response = append(response, PendingTransferResponse{
			ID:        transfer.ID.String(),
			UnitID:    transfer.UnitID.String(),
			Folio:     transfer.Folio,
			FromArea:  transfer.FromArea.String(),
			Pieces:    transfer.Pieces,
			CreatedAt: transfer.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterSubscription handles POST /api/v1/subscriptions.
func (s *Server) RegisterSubscription(ctx echo.Context) error {
	userID, err := actor(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request SubscriptionRequest
	if err = ctx.Bind(&request); err != nil {
		return fail(ctx, errs.NewValueIsInvalidError("body"))
	}
	if request.Endpoint == "" {
		return fail(ctx, errs.NewValueIsRequiredError("endpoint"))
	}
	area, err := kernel.NewArea(request.Area)
	if err != nil {
		return fail(ctx, err)
	}

	err = s.sink.Register(ctx.Request().Context(), notify.SubscriptionDTO{
		Endpoint: request.Endpoint,
		UserID:   userID.String(),
		Area:     area.String(),
		P256DH:   request.P256DH,
		Auth:     request.Auth,
	})
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

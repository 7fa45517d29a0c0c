package http

import (
	"errors"
	"net/http"
	"strconv"

	"jewelry/internal/core/application/usecases/commands"
	"jewelry/internal/core/application/usecases/queries"
	"jewelry/internal/core/domain/model/estimate"
	"jewelry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server translates HTTP requests into application commands and queries.
type Server struct {
	// Command handlers
	submitEstimateHandler       commands.SubmitEstimateCommandHandler
	changeEstimateStatusHandler commands.ChangeEstimateStatusCommandHandler
	updateRatesHandler          commands.UpdateRatesCommandHandler

	// Query handlers
	getEstimatesHandler        queries.GetEstimatesQueryHandler
	getEstimateByNumberHandler queries.GetEstimateByNumberQueryHandler
	getNextOrderNumberHandler  queries.GetNextOrderNumberQueryHandler
	getCurrentRatesHandler     queries.GetCurrentRatesQueryHandler
	getRateHistoryHandler      queries.GetRateHistoryQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	submitEstimateHandler commands.SubmitEstimateCommandHandler,
	changeEstimateStatusHandler commands.ChangeEstimateStatusCommandHandler,
	updateRatesHandler commands.UpdateRatesCommandHandler,
	getEstimatesHandler queries.GetEstimatesQueryHandler,
	getEstimateByNumberHandler queries.GetEstimateByNumberQueryHandler,
	getNextOrderNumberHandler queries.GetNextOrderNumberQueryHandler,
	getCurrentRatesHandler queries.GetCurrentRatesQueryHandler,
	getRateHistoryHandler queries.GetRateHistoryQueryHandler,
) *Server {
	return &Server{
		submitEstimateHandler:       submitEstimateHandler,
		changeEstimateStatusHandler: changeEstimateStatusHandler,
		updateRatesHandler:          updateRatesHandler,
		getEstimatesHandler:         getEstimatesHandler,
		getEstimateByNumberHandler:  getEstimateByNumberHandler,
		getNextOrderNumberHandler:   getNextOrderNumberHandler,
		getCurrentRatesHandler:      getCurrentRatesHandler,
		getRateHistoryHandler:       getRateHistoryHandler,
	}
}

// RegisterRoutes attaches the handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/add/estimate", s.SubmitEstimate)
	e.PUT("/update/estimate-status/:key", s.ChangeEstimateStatus)
	e.GET("/lastOrderNumber", s.GetNextOrderNumber)
	e.GET("/get/estimates", s.GetEstimates)
	e.GET("/get-estimates/:estimate_number", s.GetEstimateByNumber)
	e.GET("/rates/current", s.GetCurrentRates)
	e.GET("/rates/history", s.GetRateHistory)
	e.POST("/rates/update", s.UpdateRates)
}

// SubmitEstimate handles POST /add/estimate. Resubmitting an existing
// estimate number updates that record instead of inserting a new one.
func (s *Server) SubmitEstimate(ctx echo.Context) error {
	var request SubmitEstimateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	source, err := estimate.ParseSource(request.SourceBy)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := estimate.ParseStatus(request.EstimateStatus)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSubmitEstimateCommand(
		request.Date.Time, request.EstimateNumber, source, status, request.details(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.submitEstimateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, estimateStatusResponseFromResult(result))
}

// ChangeEstimateStatus handles PUT /update/estimate-status/:key. The key is
// either a numeric estimate id or an estimate number.
func (s *Server) ChangeEstimateStatus(ctx echo.Context) error {
	var request ChangeEstimateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	target, err := estimate.ParseStatus(request.EstimateStatus)
	if err != nil {
		return s.fail(ctx, err)
	}

	key := ctx.Param("key")
	var estimateID int64
	var estimateNumber string
	if id, parseErr := strconv.ParseInt(key, 10, 64); parseErr == nil && id > 0 {
		estimateID = id
	} else {
		estimateNumber = key
	}

	cmd, err := commands.NewChangeEstimateStatusCommand(
		estimateID, estimateNumber, target, request.CustomerAccepting,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.changeEstimateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, estimateStatusResponseFromResult(result))
}

// GetNextOrderNumber handles GET /lastOrderNumber. The preview is advisory:
// nothing is locked or reserved, a concurrent allocation may claim the value
// first.
func (s *Server) GetNextOrderNumber(ctx echo.Context) error {
	response, err := s.getNextOrderNumberHandler.Handle(
		ctx.Request().Context(), queries.NewGetNextOrderNumberQuery(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NextOrderNumberResponse{
		OrderNumber: response.NextOrderNumber,
		Degraded:    response.Degraded,
	})
}

// GetEstimates handles GET /get/estimates, newest first.
func (s *Server) GetEstimates(ctx echo.Context) error {
	views, err := s.getEstimatesHandler.Handle(
		ctx.Request().Context(), queries.NewGetEstimatesQuery(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]EstimateResponse, len(views))
	for i, view := range views {
		response[i] = estimateResponseFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetEstimateByNumber handles GET /get-estimates/:estimate_number.
func (s *Server) GetEstimateByNumber(ctx echo.Context) error {
	query, err := queries.NewGetEstimateByNumberQuery(ctx.Param("estimate_number"))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getEstimateByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, estimateResponseFromView(view))
}

// GetCurrentRates handles GET /rates/current. When no rates have ever been
// published the endpoint serves a zeroed snapshot rather than an error.
func (s *Server) GetCurrentRates(ctx echo.Context) error {
	view, err := s.getCurrentRatesHandler.Handle(
		ctx.Request().Context(), queries.NewGetCurrentRatesQuery(),
	)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusOK, RateResponse{})
		}
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rateResponseFromView(view))
}

// GetRateHistory handles GET /rates/history, past days only, newest first.
func (s *Server) GetRateHistory(ctx echo.Context) error {
	views, err := s.getRateHistoryHandler.Handle(
		ctx.Request().Context(), queries.NewGetRateHistoryQuery(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]RateResponse, len(views))
	for i, view := range views {
		response[i] = rateResponseFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateRates handles POST /rates/update.
func (s *Server) UpdateRates(ctx echo.Context) error {
	var request UpdateRatesRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateRatesCommand(
		request.Date.Time,
		request.TimeOfDay,
		request.Rate16Crt,
		request.Rate18Crt,
		request.Rate22Crt,
		request.Rate24Crt,
		request.SilverRate,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.updateRatesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// fail maps application errors onto HTTP status codes. Unrecognized errors
// never leak their text to the caller.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrOperationForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
	}
}

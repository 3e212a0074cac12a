package availability

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/availability/model/dto"
	"hms/internal/domains/availability/service"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms/status", handler.GetRoomStatuses)
	router.Get("/dashboard", handler.GetDashboard)
}

// PublicRouter mounts the lobby board, which needs no login.
func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/public/board", handler.GetBoard)
}

func windowFromRequest(request *http.Request) (dto.WindowRequest, error) {
	query := request.URL.Query()
	req := dto.WindowRequest{
		CheckIn:  query.Get(constant.RequestParamCheckIn),
		CheckOut: query.Get(constant.RequestParamCheckOut),
	}

	return req, validator.ValidateStruct(&req)
}

// GetRoomStatuses reports occupied and reserved flags for every room.
// @Summary Get room statuses
// @Description Classify each room against the check_in/check_out window, defaulting to today.
// @Tags Availability
// @Produce json
// @Param check_in query string false "Window start (YYYY-MM-DD)"
// @Param check_out query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RoomStatusesResponse] "Room statuses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/status [get]
// @Security BearerAuth
func (handler *Handler) GetRoomStatuses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomStatuses")
	defer scope.End()

	req, err := windowFromRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Statuses(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room statuses")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDashboard returns the headline occupancy stats.
// @Summary Get dashboard stats
// @Tags Availability
// @Produce json
// @Param check_in query string false "Window start (YYYY-MM-DD)"
// @Param check_out query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	req, err := windowFromRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Dashboard(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBoard returns the public room board grouped by floor.
// @Summary Get public room board
// @Tags Availability
// @Produce json
// @Param check_in query string false "Window start (YYYY-MM-DD)"
// @Param check_out query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.BoardResponse] "Board"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/board [get]
func (handler *Handler) GetBoard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoard")
	defer scope.End()

	req, err := windowFromRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Board(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get board")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

package report

import (
	"context"
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/report/export"
	"hms/internal/domains/report/model/dto"
	"hms/internal/domains/report/service"
	"hms/shared"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/ota/summary", handler.GetOTASummary)
		routerGroup.Get("/ota/summary/export", handler.ExportOTASummary)
		routerGroup.Get("/ota/guests", handler.GetOTAGuests)
		routerGroup.Get("/ota/guests/export", handler.ExportOTAGuests)
		routerGroup.Get("/guests", handler.GetGuestRecap)
		routerGroup.Get("/guests/export", handler.ExportGuestRecap)
		routerGroup.Get("/breakfast", handler.GetBreakfast)
		routerGroup.Get("/breakfast/export", handler.ExportBreakfast)
	})
}

func otaSummaryFromRequest(request *http.Request) (dto.OTASummaryRequest, error) {
	req := dto.OTASummaryRequest{
		Year: request.URL.Query().Get(constant.RequestParamYear),
	}

	return req, validator.ValidateStruct(&req)
}

func otaGuestsFromRequest(request *http.Request) (dto.OTAGuestRequest, error) {
	query := request.URL.Query()
	req := dto.OTAGuestRequest{
		Year:    query.Get(constant.RequestParamYear),
		Month:   query.Get(constant.RequestParamMonth),
		Channel: query.Get(constant.RequestParamChannel),
	}

	return req, validator.ValidateStruct(&req)
}

func guestRecapFromRequest(request *http.Request) (dto.GuestRecapRequest, error) {
	query := request.URL.Query()
	req := dto.GuestRecapRequest{
		StartDate: query.Get(constant.RequestParamStartDate),
		EndDate:   query.Get(constant.RequestParamEndDate),
	}

	return req, validator.ValidateStruct(&req)
}

func breakfastFromRequest(request *http.Request) (dto.BreakfastRequest, error) {
	req := dto.BreakfastRequest{
		Date: request.URL.Query().Get(constant.RequestParamDate),
	}

	return req, validator.ValidateStruct(&req)
}

// view runs one report endpoint: parse the query, compute, then answer.
func view[Req, Res any](
	handler *Handler,
	writer http.ResponseWriter,
	request *http.Request,
	spanName string,
	parse func(*http.Request) (Req, error),
	compute func(context.Context, Req) (Res, error),
) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+spanName)
	defer scope.End()

	req, err := parse(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	res, err := compute(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("report", spanName).Msg("failed to build report")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// download is view for the spreadsheet exports. With publish=true the file
// goes to object storage and the link is returned instead of the bytes.
func download[Req any](
	handler *Handler,
	writer http.ResponseWriter,
	request *http.Request,
	spanName string,
	parse func(*http.Request) (Req, error),
	build func(context.Context, Req) (export.File, error),
) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+spanName)
	defer scope.End()

	req, err := parse(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	file, err := build(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("report", spanName).Msg("failed to export report")

		response.WithError(writer, err)

		return
	}

	publish := shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamPublish))
	if publish == nil || !*publish {
		response.WithFile(writer, file.Name, file.ContentType(), file.Content)

		return
	}

	res, err := handler.service.Publish(ctx, file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("file", file.Name).Msg("failed to publish export")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Export published to " + res.URL)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOTASummary returns monthly OTA revenue for a year.
// @Summary Get OTA monthly revenue
// @Tags Report
// @Produce json
// @Param year query string false "Year, defaults to the current year"
// @Success 200 {object} response.Data[engine.OTASummaryReport] "OTA summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/ota/summary [get]
// @Security BearerAuth
func (handler *Handler) GetOTASummary(writer http.ResponseWriter, request *http.Request) {
	view(handler, writer, request, "GetOTASummary", otaSummaryFromRequest, handler.service.OTASummary)
}

// ExportOTASummary downloads the OTA monthly revenue workbook.
// @Summary Export OTA monthly revenue
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query string false "Year, defaults to the current year"
// @Param publish query boolean false "Upload to object storage instead of streaming"
// @Success 200 {file} file "OTA summary workbook"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/ota/summary/export [get]
// @Security BearerAuth
func (handler *Handler) ExportOTASummary(writer http.ResponseWriter, request *http.Request) {
	download(handler, writer, request, "ExportOTASummary", otaSummaryFromRequest, handler.service.ExportOTASummary)
}

// GetOTAGuests lists OTA guests for a year, month and channel.
// @Summary Get OTA guest recap
// @Tags Report
// @Produce json
// @Param year query string false "Year, defaults to the current year"
// @Param month query string false "Month 1-12, empty for the whole year"
// @Param channel query string false "OTA channel, empty or ALL for every channel"
// @Success 200 {object} response.Data[engine.OTAGuestReport] "OTA guests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/ota/guests [get]
// @Security BearerAuth
func (handler *Handler) GetOTAGuests(writer http.ResponseWriter, request *http.Request) {
	view(handler, writer, request, "GetOTAGuests", otaGuestsFromRequest, handler.service.OTAGuests)
}

// ExportOTAGuests downloads the OTA guest recap workbook.
// @Summary Export OTA guest recap
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query string false "Year, defaults to the current year"
// @Param month query string false "Month 1-12, empty for the whole year"
// @Param channel query string false "OTA channel, empty or ALL for every channel"
// @Param publish query boolean false "Upload to object storage instead of streaming"
// @Success 200 {file} file "OTA guests workbook"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/ota/guests/export [get]
// @Security BearerAuth
func (handler *Handler) ExportOTAGuests(writer http.ResponseWriter, request *http.Request) {
	download(handler, writer, request, "ExportOTAGuests", otaGuestsFromRequest, handler.service.ExportOTAGuests)
}

// GetGuestRecap breaks the guests in a window down by payment status and channel.
// @Summary Get guest recap
// @Tags Report
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[engine.GuestRecapReport] "Guest recap"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuestRecap(writer http.ResponseWriter, request *http.Request) {
	view(handler, writer, request, "GetGuestRecap", guestRecapFromRequest, handler.service.GuestRecap)
}

// ExportGuestRecap downloads the guest recap workbook.
// @Summary Export guest recap
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Param publish query boolean false "Upload to object storage instead of streaming"
// @Success 200 {file} file "Guest recap workbook"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/guests/export [get]
// @Security BearerAuth
func (handler *Handler) ExportGuestRecap(writer http.ResponseWriter, request *http.Request) {
	download(handler, writer, request, "ExportGuestRecap", guestRecapFromRequest, handler.service.ExportGuestRecap)
}

// GetBreakfast returns the breakfast manifest for the guests in house on a date.
// @Summary Get breakfast manifest
// @Tags Report
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[engine.BreakfastReport] "Breakfast manifest"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/breakfast [get]
// @Security BearerAuth
func (handler *Handler) GetBreakfast(writer http.ResponseWriter, request *http.Request) {
	view(handler, writer, request, "GetBreakfast", breakfastFromRequest, handler.service.Breakfast)
}

// ExportBreakfast downloads the breakfast manifest workbook.
// @Summary Export breakfast manifest
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Param publish query boolean false "Upload to object storage instead of streaming"
// @Success 200 {file} file "Breakfast workbook"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/breakfast/export [get]
// @Security BearerAuth
func (handler *Handler) ExportBreakfast(writer http.ResponseWriter, request *http.Request) {
	download(handler, writer, request, "ExportBreakfast", breakfastFromRequest, handler.service.ExportBreakfast)
}

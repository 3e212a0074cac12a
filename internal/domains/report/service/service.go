package service

import (
	"context"
	"fmt"
	"strconv"

	"hms/config"
	"hms/infras/otel"
	bookingRepo "hms/internal/domains/booking/repository"
	"hms/internal/domains/report/engine"
	"hms/internal/domains/report/export"
	"hms/internal/domains/report/model/dto"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	"hms/shared/date"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheReport = "report"

	viewOTASummary = "ota-summary"
	viewOTAGuests  = "ota-guests"
	viewGuestRecap = "guest-recap"
	viewBreakfast  = "breakfast"
)

type Report interface {
	OTASummary(ctx context.Context, req dto.OTASummaryRequest) (engine.OTASummaryReport, error)
	OTAGuests(ctx context.Context, req dto.OTAGuestRequest) (engine.OTAGuestReport, error)
	GuestRecap(ctx context.Context, req dto.GuestRecapRequest) (engine.GuestRecapReport, error)
	Breakfast(ctx context.Context, req dto.BreakfastRequest) (engine.BreakfastReport, error)

	ExportOTASummary(ctx context.Context, req dto.OTASummaryRequest) (export.File, error)
	ExportOTAGuests(ctx context.Context, req dto.OTAGuestRequest) (export.File, error)
	ExportGuestRecap(ctx context.Context, req dto.GuestRecapRequest) (export.File, error)
	ExportBreakfast(ctx context.Context, req dto.BreakfastRequest) (export.File, error)

	Publish(ctx context.Context, file export.File) (dto.ExportResponse, error)
}

type serviceImpl struct {
	bookings  bookingRepo.Booking
	cfg       *config.Config
	cache     cache.Cache
	publisher export.Publisher
	otel      otel.Otel
	today     func() date.Date
}

func New(
	bookings bookingRepo.Booking,
	cfg *config.Config,
	cache cache.Cache,
	publisher export.Publisher,
	otel otel.Otel,
) Report {
	return NewWithClock(bookings, cfg, cache, publisher, otel, timezone.Today)
}

// NewWithClock lets callers decide what "today" is for requests that leave the year or date out.
func NewWithClock(
	bookings bookingRepo.Booking,
	cfg *config.Config,
	cache cache.Cache,
	publisher export.Publisher,
	otel otel.Otel,
	today func() date.Date,
) Report {
	return &serviceImpl{
		bookings:  bookings,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
		today:     today,
	}
}

func (s *serviceImpl) OTASummary(ctx context.Context, req dto.OTASummaryRequest) (res engine.OTASummaryReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OTASummary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	year, err := req.YearOr(s.today())
	if err != nil {
		return res, err
	}

	return memoize(ctx, s, viewOTASummary, []string{strconv.Itoa(year)}, func() engine.OTASummaryReport {
		return engine.OTAMonthlySummary(s.bookings.GetAll(ctx), year)
	}), nil
}

func (s *serviceImpl) OTAGuests(ctx context.Context, req dto.OTAGuestRequest) (res engine.OTAGuestReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OTAGuests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := req.ToFilter(s.today())
	if err != nil {
		return res, err
	}

	month, channel := "all", dto.AllChannels
	if filter.Month != nil {
		month = strconv.Itoa(int(*filter.Month))
	}

	if filter.Channel != nil {
		channel = string(*filter.Channel)
	}

	params := []string{strconv.Itoa(filter.Year), month, channel}

	return memoize(ctx, s, viewOTAGuests, params, func() engine.OTAGuestReport {
		return engine.OTAGuestRecap(s.bookings.GetAll(ctx), filter)
	}), nil
}

func (s *serviceImpl) GuestRecap(ctx context.Context, req dto.GuestRecapRequest) (res engine.GuestRecapReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GuestRecap")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := req.ToRange()
	if err != nil {
		return res, err
	}

	return memoize(ctx, s, viewGuestRecap, []string{dto.RangeKey(stay)}, func() engine.GuestRecapReport {
		return engine.GuestRecap(s.bookings.GetAll(ctx), stay)
	}), nil
}

func (s *serviceImpl) Breakfast(ctx context.Context, req dto.BreakfastRequest) (res engine.BreakfastReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Breakfast")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	target, err := req.DateOr(s.today())
	if err != nil {
		return res, err
	}

	return memoize(ctx, s, viewBreakfast, []string{target.String()}, func() engine.BreakfastReport {
		return engine.BreakfastManifest(s.bookings.GetAll(ctx), target)
	}), nil
}

func (s *serviceImpl) ExportOTASummary(ctx context.Context, req dto.OTASummaryRequest) (file export.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportOTASummary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.OTASummary(ctx, req)
	if err != nil {
		return file, err
	}

	return render(export.OTASummary(report))
}

func (s *serviceImpl) ExportOTAGuests(ctx context.Context, req dto.OTAGuestRequest) (file export.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportOTAGuests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.OTAGuests(ctx, req)
	if err != nil {
		return file, err
	}

	return render(export.OTAGuests(report))
}

func (s *serviceImpl) ExportGuestRecap(ctx context.Context, req dto.GuestRecapRequest) (file export.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportGuestRecap")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.GuestRecap(ctx, req)
	if err != nil {
		return file, err
	}

	return render(export.GuestRecap(report))
}

func (s *serviceImpl) ExportBreakfast(ctx context.Context, req dto.BreakfastRequest) (file export.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportBreakfast")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.Breakfast(ctx, req)
	if err != nil {
		return file, err
	}

	return render(export.Breakfast(report))
}

func (s *serviceImpl) Publish(ctx context.Context, file export.File) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	url, err := s.publisher.Publish(ctx, file)
	if err != nil {
		return res, fmt.Errorf("failed to publish %s: %w", file.Name, err)
	}

	return dto.ExportResponse{FileName: file.Name, URL: url}, nil
}

// memoize serves a view from the cache when the store has not changed since it was computed.
func memoize[T any](ctx context.Context, s *serviceImpl, view string, params []string, compute func() T) T {
	cacheKey := shared.BuildCacheKey(append([]string{cacheReport, s.bookings.Revision(ctx), view}, params...)...)

	var res T
	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for report")

		return res
	}

	res = compute()

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("view", view).Msg("failed to save report to cache")
		}
	}()

	return res
}

func render(file export.File, err error) (export.File, error) {
	if err != nil {
		log.Warn().Err(err).Msg("failed to render export")

		return file, fmt.Errorf("failed to render export: %w", err)
	}

	return file, nil
}

package service

import (
	"context"

	"hms/infras/otel"
	"hms/internal/domains/availability/engine"
	"hms/internal/domains/availability/model/dto"
	bookingRepo "hms/internal/domains/booking/repository"
	"hms/internal/domains/room/inventory"
	roomRepo "hms/internal/domains/room/repository"
	"hms/shared/constant"
	"hms/shared/date"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	Statuses(ctx context.Context, req dto.WindowRequest) (dto.RoomStatusesResponse, error)
	Dashboard(ctx context.Context, req dto.WindowRequest) (dto.DashboardResponse, error)
	Board(ctx context.Context, req dto.WindowRequest) (dto.BoardResponse, error)
}

type serviceImpl struct {
	rooms    roomRepo.Room
	bookings bookingRepo.Booking
	otel     otel.Otel
	today    func() date.Date
}

func New(rooms roomRepo.Room, bookings bookingRepo.Booking, otel otel.Otel) Availability {
	return NewWithClock(rooms, bookings, otel, timezone.Today)
}

// NewWithClock lets callers decide what "today" is for windows without bounds.
func NewWithClock(rooms roomRepo.Room, bookings bookingRepo.Booking, otel otel.Otel, today func() date.Date) Availability {
	return &serviceImpl{
		rooms:    rooms,
		bookings: bookings,
		otel:     otel,
		today:    today,
	}
}

func (s *serviceImpl) Statuses(ctx context.Context, req dto.WindowRequest) (res dto.RoomStatusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Statuses")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.window(req)
	if err != nil {
		return res, err
	}

	rooms := s.rooms.GetAll(ctx)
	statuses := engine.ComputeRoomStatuses(rooms, s.bookings.GetAll(ctx), w)

	res.FromModels(w, rooms, statuses)

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context, req dto.WindowRequest) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.window(req)
	if err != nil {
		return res, err
	}

	rooms := s.rooms.GetAll(ctx)
	bookings := s.bookings.GetAll(ctx)
	statuses := engine.ComputeRoomStatuses(rooms, bookings, w)
	stats := engine.Summarize(rooms, statuses, bookings)

	scope.SetAttributes(map[string]any{
		"window.start":   w.Start.String(),
		"window.end":     w.End.String(),
		"rooms.occupied": stats.Occupied,
	})

	res.FromModels(w, stats, rooms, statuses)

	return res, nil
}

func (s *serviceImpl) Board(ctx context.Context, req dto.WindowRequest) (res dto.BoardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Board")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.window(req)
	if err != nil {
		return res, err
	}

	rooms := s.rooms.GetAll(ctx)
	statuses := engine.ComputeRoomStatuses(rooms, s.bookings.GetAll(ctx), w)

	res.FromModels(w, engine.GroupByFloor(inventory.Floors(), rooms, statuses))

	return res, nil
}

func (s *serviceImpl) window(req dto.WindowRequest) (engine.Window, error) {
	start, end, err := req.Bounds()
	if err != nil {
		log.Warn().Err(err).Msg("invalid status window")

		return engine.Window{}, err
	}

	return engine.NormalizeWindow(start, end, s.today()), nil
}

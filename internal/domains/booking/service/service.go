package service

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	"hms/internal/domains/booking/repository"
	"hms/internal/domains/report/engine"
	"hms/internal/domains/report/export"
	reportDto "hms/internal/domains/report/model/dto"
	roomRepo "hms/internal/domains/room/repository"
	"hms/shared/constant"
	"hms/shared/date"
	"hms/shared/failure"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.SaveBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.SaveBookingRequest) (dto.BookingResponse, error)
	Patch(ctx context.Context, id string, req dto.PatchBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	List(ctx context.Context, req dto.BookingFilterRequest) (dto.GetBookingsResponse, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, req dto.BookingFilterRequest) (export.File, error)
	Publish(ctx context.Context, file export.File) (reportDto.ExportResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	rooms     roomRepo.Room
	cfg       *config.Config
	kafka     kafka.Client
	publisher export.Publisher
	otel      otel.Otel
	today     func() date.Date
}

func New(
	repo repository.Booking,
	rooms roomRepo.Room,
	cfg *config.Config,
	kafka kafka.Client,
	publisher export.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		cfg:       cfg,
		kafka:     kafka,
		publisher: publisher,
		otel:      otel,
		today:     timezone.Today,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SaveBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(uuid.NewString(), s.today(), gModel.NewMetadata(user, timezone.Now()))
	if err != nil {
		return res, err
	}

	if err = s.save(ctx, &booking, req.Price == nil); err != nil {
		return res, err
	}

	scope.SetAttribute("booking.id", booking.ID)
	res.FromModel(booking)

	return res, nil
}

// Update replaces every field of an existing booking. The id and creation stamp are kept.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.SaveBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	metadata := current.Metadata
	metadata.Touch(user, timezone.Now())

	booking, err := req.ToModel(current.ID, s.today(), metadata)
	if err != nil {
		return res, err
	}

	if err = s.save(ctx, &booking, req.Price == nil); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Patch(ctx context.Context, id string, req dto.PatchBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Patch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if req.IsEmpty() {
		res.FromModel(booking)

		return res, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req.Apply(&booking)
	booking.Touch(user, timezone.Now())

	if err = s.save(ctx, &booking, false); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.BookingFilterRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.filter(ctx, req)
	if err != nil {
		return res, err
	}

	res.FromModels(bookings)

	return res, nil
}

// Delete is idempotent. Only an actual removal publishes an event.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.repo.Delete(ctx, id) {
		log.Debug().Str("id", id).Msg("booking already gone")

		return nil
	}

	s.publish(ctx, model.EventDeleted, id, nil)

	return nil
}

func (s *serviceImpl) Export(ctx context.Context, req dto.BookingFilterRequest) (file export.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.filter(ctx, req)
	if err != nil {
		return file, err
	}

	file, err = export.BookingList(bookings, s.today())
	if err != nil {
		log.Warn().Err(err).Msg("failed to export bookings")

		return file, fmt.Errorf("failed to export bookings: %w", err)
	}

	return file, nil
}

func (s *serviceImpl) Publish(ctx context.Context, file export.File) (res reportDto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	url, err := s.publisher.Publish(ctx, file)
	if err != nil {
		return res, fmt.Errorf("failed to publish %s: %w", file.Name, err)
	}

	return reportDto.ExportResponse{FileName: file.Name, URL: url}, nil
}

func (s *serviceImpl) filter(ctx context.Context, req dto.BookingFilterRequest) ([]model.Booking, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, err
	}

	return engine.FilterBookings(s.repo.GetAll(ctx), filter), nil
}

// save fills the room type from the inventory when the form left it blank,
// and the nightly price only when the form carried no price at all.
func (s *serviceImpl) save(ctx context.Context, booking *model.Booking, priceBlank bool) error {
	if room, ok := s.rooms.Get(ctx, booking.RoomNumber); ok {
		if booking.RoomType == "" {
			booking.RoomType = room.Type
		}

		if priceBlank {
			booking.Price = booking.RoomType.Price()
		}
	}

	if err := s.repo.Upsert(ctx, *booking); err != nil {
		log.Error().Err(err).Str("id", booking.ID).Msg("failed to save booking")

		return fmt.Errorf("failed to save booking: %w", err)
	}

	s.publish(ctx, model.EventSaved, booking.ID, booking)

	return nil
}

// publish never fails the request; the store stays the source of truth.
func (s *serviceImpl) publish(ctx context.Context, eventType model.EventType, id string, booking *model.Booking) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event := model.Event{
		Type:       eventType,
		BookingID:  id,
		Booking:    booking,
		OccurredAt: timezone.Now(),
		By:         user,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.External.Kafka.Topic, kafka.Message{Key: id, Value: event}); err != nil {
		log.Error().Err(err).Str("id", id).Str("event", string(eventType)).Msg("failed to publish booking event")
	}
}

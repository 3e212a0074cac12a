package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"hms/infras/otel"
	"hms/internal/domains/booking/model"
	"hms/shared/constant"
	"hms/shared/failure"

	"github.com/google/uuid"
)

// Booking is the in-memory booking store. Bookings keep their insertion order.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	Upsert(ctx context.Context, booking model.Booking) error
	Delete(ctx context.Context, id string) (removed bool)
	Get(ctx context.Context, id string) (model.Booking, bool)
	GetAll(ctx context.Context) []model.Booking
	// Revision changes on every mutation and identifies a snapshot of the store.
	// It is prefixed with an epoch drawn when the store is created, so two stores
	// never report the same revision.
	Revision(ctx context.Context) string
}

type repositoryImpl struct {
	mu       sync.RWMutex
	bookings []model.Booking
	epoch    string
	revision uint64
	otel     otel.Otel
}

func New(otel otel.Otel) Booking {
	return &repositoryImpl{
		epoch: uuid.NewString(),
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if booking.ID == constant.Empty {
		return failure.BadRequestFromString("booking id is required") //nolint:wrapcheck
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(booking.ID) >= 0 {
		return failure.Conflict("booking already exists") //nolint:wrapcheck
	}

	r.bookings = append(r.bookings, booking)
	r.revision++

	return nil
}

// Upsert replaces the booking with the same id in place, or appends it.
func (r *repositoryImpl) Upsert(ctx context.Context, booking model.Booking) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if booking.ID == constant.Empty {
		return failure.BadRequestFromString("booking id is required") //nolint:wrapcheck
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(booking.ID); i >= 0 {
		r.bookings[i] = booking
	} else {
		r.bookings = append(r.bookings, booking)
	}

	r.revision++

	return nil
}

// Delete removes the booking. Unknown ids leave the store untouched.
func (r *repositoryImpl) Delete(ctx context.Context, id string) bool {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}

	r.bookings = slices.Delete(r.bookings, i, i+1)
	r.revision++

	return true
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Booking, bool) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Booking{}, false
	}

	return r.bookings[i], true
}

// GetAll returns a copy, so callers can sort or filter freely.
func (r *repositoryImpl) GetAll(ctx context.Context) []model.Booking {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.bookings)
}

func (r *repositoryImpl) Revision(_ context.Context) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.epoch + "." + strconv.FormatUint(r.revision, 10)
}

// indexOf must be called with the lock held.
func (r *repositoryImpl) indexOf(id string) int {
	return slices.IndexFunc(r.bookings, func(b model.Booking) bool {
		return b.ID == id
	})
}

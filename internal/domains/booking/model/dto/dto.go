package dto

import (
	"fmt"

	"hms/internal/domains/booking/model"
	"hms/internal/domains/report/engine"
	roomModel "hms/internal/domains/room/model"
	"hms/shared/date"
	"hms/shared/failure"
	gModel "hms/shared/model"
)

// SaveBookingRequest is the booking form. It is used for both create and full edit.
// Unset meal plan, payment status and payment method fall back to RBF, Cash and Walk In.
// A nil price is filled from the room inventory; an explicit 0 is kept.
type SaveBookingRequest struct {
	Code           string              `json:"code"            validate:"omitempty,max=30"`
	RoomNumber     string              `json:"room_number"     validate:"required,max=10"`
	RoomType       roomModel.RoomType  `json:"room_type"       validate:"omitempty,enum"`
	BookingDate    string              `json:"booking_date"    validate:"datestr"`
	GuestName      string              `json:"guest_name"      validate:"required,max=100"`
	Phone          string              `json:"phone"           validate:"omitempty,max=20"`
	CheckInDate    string              `json:"check_in_date"   validate:"datestr"`
	CheckOutDate   string              `json:"check_out_date"  validate:"datestr"`
	Price          *int64              `json:"price"           validate:"omitempty,min=0"`
	MealPlan       model.MealPlan      `json:"meal_plan"       validate:"omitempty,enum"`
	Pax            int                 `json:"pax"             validate:"min=0,max=20"`
	PaymentStatus  model.PaymentStatus `json:"payment_status"  validate:"omitempty,enum"`
	PaymentMethod  model.PaymentMethod `json:"payment_method"  validate:"omitempty,enum"`
	Notes          string              `json:"notes"           validate:"omitempty,max=500"`
	ReservationBy  string              `json:"reservation_by"  validate:"omitempty,max=100"`
	CheckInTime    string              `json:"check_in_time"   validate:"clock"`
	CheckOutTime   string              `json:"check_out_time"  validate:"clock"`
	BreakfastNotes string              `json:"breakfast_notes" validate:"omitempty,max=500"`
}

// ToModel builds a normalized booking. An unset booking date means today.
func (r *SaveBookingRequest) ToModel(id string, today date.Date, metadata gModel.Metadata) (model.Booking, error) {
	bookingDate, err := date.Parse(r.BookingDate)
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("booking_date: %w", err)) //nolint:wrapcheck
	}

	checkIn, err := date.Parse(r.CheckInDate)
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("check_in_date: %w", err)) //nolint:wrapcheck
	}

	checkOut, err := date.Parse(r.CheckOutDate)
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("check_out_date: %w", err)) //nolint:wrapcheck
	}

	if bookingDate.IsZero() {
		bookingDate = today
	}

	b := model.Booking{
		ID:             id,
		Code:           r.Code,
		RoomNumber:     r.RoomNumber,
		RoomType:       r.RoomType,
		BookingDate:    bookingDate,
		GuestName:      r.GuestName,
		Phone:          r.Phone,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		MealPlan:       orDefault(r.MealPlan, model.MealPlanRoomBreakfast),
		Pax:            r.Pax,
		PaymentStatus:  orDefault(r.PaymentStatus, model.PaymentCash),
		PaymentMethod:  orDefault(r.PaymentMethod, model.ChannelWalkIn),
		Notes:          r.Notes,
		ReservationBy:  r.ReservationBy,
		CheckInTime:    r.CheckInTime,
		CheckOutTime:   r.CheckOutTime,
		BreakfastNotes: r.BreakfastNotes,
		Metadata:       metadata,
	}

	if r.Price != nil {
		b.Price = *r.Price
	}

	if b.Code == "" {
		b.Code = model.GenerateCode()
	}

	b.Normalize()

	return b, nil
}

func orDefault[T ~string](value, fallback T) T {
	if value == "" {
		return fallback
	}

	return value
}

// PatchBookingRequest carries the inline edits made from the report views.
// Nil fields are left untouched.
type PatchBookingRequest struct {
	Notes          *string `json:"notes"           validate:"omitempty,max=500"`
	CheckOutTime   *string `json:"check_out_time"  validate:"omitempty,clock"`
	BreakfastNotes *string `json:"breakfast_notes" validate:"omitempty,max=500"`
}

func (r *PatchBookingRequest) IsEmpty() bool {
	return r.Notes == nil && r.CheckOutTime == nil && r.BreakfastNotes == nil
}

func (r *PatchBookingRequest) Apply(b *model.Booking) {
	if r.Notes != nil {
		b.Notes = *r.Notes
	}

	if r.CheckOutTime != nil {
		b.CheckOutTime = *r.CheckOutTime
	}

	if r.BreakfastNotes != nil {
		b.BreakfastNotes = *r.BreakfastNotes
	}
}

// BookingFilterRequest is the booking list query. Every field is optional.
type BookingFilterRequest struct {
	Search    string `json:"search"     validate:"omitempty,max=100"`
	StartDate string `json:"start_date" validate:"datestr"`
	EndDate   string `json:"end_date"   validate:"datestr"`
}

func (r BookingFilterRequest) ToFilter() (engine.BookingFilter, error) {
	filter := engine.BookingFilter{Search: r.Search}

	var err error
	if filter.Stay.Start, err = date.ParseOptional(r.StartDate); err != nil {
		return filter, failure.BadRequest(fmt.Errorf("start_date: %w", err)) //nolint:wrapcheck
	}

	if filter.Stay.End, err = date.ParseOptional(r.EndDate); err != nil {
		return filter, failure.BadRequest(fmt.Errorf("end_date: %w", err)) //nolint:wrapcheck
	}

	return filter, nil
}

type BookingResponse struct {
	ID             string              `json:"id"`
	Code           string              `json:"code"`
	RoomNumber     string              `json:"room_number"`
	RoomType       roomModel.RoomType  `json:"room_type"`
	BookingDate    date.Date           `json:"booking_date"`
	GuestName      string              `json:"guest_name"`
	Phone          string              `json:"phone"`
	CheckInDate    date.Date           `json:"check_in_date"`
	CheckOutDate   date.Date           `json:"check_out_date"`
	Nights         int                 `json:"nights"`
	Price          int64               `json:"price"`
	TotalPrice     int64               `json:"total_price"`
	MealPlan       model.MealPlan      `json:"meal_plan"`
	Pax            int                 `json:"pax"`
	PaymentStatus  model.PaymentStatus `json:"payment_status"`
	PaymentMethod  model.PaymentMethod `json:"payment_method"`
	Notes          string              `json:"notes"`
	ReservationBy  string              `json:"reservation_by"`
	CheckInTime    string              `json:"check_in_time"`
	CheckOutTime   string              `json:"check_out_time"`
	BreakfastNotes string              `json:"breakfast_notes"`
	gModel.Metadata
}

func (r *BookingResponse) FromModel(b model.Booking) {
	r.ID = b.ID
	r.Code = b.Code
	r.RoomNumber = b.RoomNumber
	r.RoomType = b.RoomType
	r.BookingDate = b.BookingDate
	r.GuestName = b.GuestName
	r.Phone = b.Phone
	r.CheckInDate = b.CheckInDate
	r.CheckOutDate = b.CheckOutDate
	r.Nights = b.Nights
	r.Price = b.Price
	r.TotalPrice = b.Revenue()
	r.MealPlan = b.MealPlan
	r.Pax = b.Pax
	r.PaymentStatus = b.PaymentStatus
	r.PaymentMethod = b.PaymentMethod
	r.Notes = b.Notes
	r.ReservationBy = b.ReservationBy
	r.CheckInTime = b.CheckInTime
	r.CheckOutTime = b.CheckOutTime
	r.BreakfastNotes = b.BreakfastNotes
	r.Metadata = b.Metadata
}

type GetBookingsResponse struct {
	Bookings     []BookingResponse `json:"bookings"`
	TotalData    int               `json:"total_data"`
	TotalRevenue int64             `json:"total_revenue"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)
	r.TotalRevenue = 0

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
		r.TotalRevenue += mod.Revenue()
	}
}

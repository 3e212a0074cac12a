package model

import (
	"fmt"
	"math/rand/v2"

	roomModel "hms/internal/domains/room/model"
	"hms/shared/date"
	"hms/shared/model"
)

const (
	EntityName = "booking"

	codePrefix = "BK-"
)

type Booking struct {
	ID             string             `json:"id"`
	Code           string             `json:"code"`
	RoomNumber     string             `json:"room_number"`
	RoomType       roomModel.RoomType `json:"room_type"`
	BookingDate    date.Date          `json:"booking_date"`
	GuestName      string             `json:"guest_name"`
	Phone          string             `json:"phone"`
	CheckInDate    date.Date          `json:"check_in_date"`
	CheckOutDate   date.Date          `json:"check_out_date"`
	Nights         int                `json:"nights"`
	Price          int64              `json:"price"`
	MealPlan       MealPlan           `json:"meal_plan"`
	Pax            int                `json:"pax"`
	PaymentStatus  PaymentStatus      `json:"payment_status"`
	PaymentMethod  PaymentMethod      `json:"payment_method"`
	Notes          string             `json:"notes"`
	ReservationBy  string             `json:"reservation_by"`
	CheckInTime    string             `json:"check_in_time"`
	CheckOutTime   string             `json:"check_out_time"`
	BreakfastNotes string             `json:"breakfast_notes"`
	model.Metadata
}

// NightsBetween counts whole nights of a stay. It is zero when either date is
// unset or the stay runs backwards.
func NightsBetween(checkIn, checkOut date.Date) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	return max(0, checkIn.DaysUntil(checkOut))
}

// Normalize re-derives the fields that depend on others.
func (b *Booking) Normalize() {
	b.Nights = NightsBetween(b.CheckInDate, b.CheckOutDate)

	if b.MealPlan == MealPlanRoomOnly {
		b.Pax = 0
	}
}

// Revenue is the stay total.
func (b Booking) Revenue() int64 {
	return b.Price * int64(b.Nights)
}

// HasStay reports whether both stay dates are set.
func (b Booking) HasStay() bool {
	return !b.CheckInDate.IsZero() && !b.CheckOutDate.IsZero()
}

// GenerateCode returns a human readable booking number. Codes are not unique.
func GenerateCode() string {
	return fmt.Sprintf("%s%d", codePrefix, 1000+rand.IntN(9000)) //nolint:gosec
}

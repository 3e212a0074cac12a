package engine

import (
	"strings"

	bookingModel "hms/internal/domains/booking/model"
	"hms/shared/date"
)

// BookingFilter narrows the booking list. A blank search and an open range
// both mean "no filter".
type BookingFilter struct {
	Search string
	Stay   date.Range
}

// MatchesSearch is a case-insensitive substring match on guest name or booking code.
func MatchesSearch(b bookingModel.Booking, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(b.GuestName), term) ||
		strings.Contains(strings.ToLower(b.Code), term)
}

// FilterBookings keeps the store order.
func FilterBookings(bookings []bookingModel.Booking, f BookingFilter) []bookingModel.Booking {
	res := make([]bookingModel.Booking, 0, len(bookings))

	for _, b := range bookings {
		if !MatchesSearch(b, f.Search) {
			continue
		}

		if !f.Stay.IsOpen() && !f.Stay.Overlaps(b.CheckInDate, b.CheckOutDate) {
			continue
		}

		res = append(res, b)
	}

	return res
}

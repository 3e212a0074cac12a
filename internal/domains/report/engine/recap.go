package engine

import (
	"slices"
	"strings"

	bookingModel "hms/internal/domains/booking/model"
	"hms/shared/date"
)

// GuestRecapReport leaves Start or End zero when that side of the range is open.
type GuestRecapReport struct {
	Start         date.Date                            `json:"start"`
	End           date.Date                            `json:"end"`
	Rows          []bookingModel.Booking               `json:"rows"`
	PaymentStatus []Bucket[bookingModel.PaymentStatus] `json:"payment_status"`
	Channels      []Bucket[bookingModel.PaymentMethod] `json:"channels"`
	TotalNightly  int64                                `json:"total_nightly"`
}

// GuestRecap lists the stays touching the range, most recently booked first,
// with per-night summaries of the same rows.
func GuestRecap(bookings []bookingModel.Booking, stay date.Range) GuestRecapReport {
	rows := make([]bookingModel.Booking, 0, len(bookings))

	if stay.IsOpen() {
		rows = append(rows, bookings...)
	} else {
		start, end := stay.Bounds()

		for _, b := range bookings {
			if b.CheckOutDate.After(start) && b.CheckInDate.Before(end) {
				rows = append(rows, b)
			}
		}
	}

	slices.SortStableFunc(rows, func(a, b bookingModel.Booking) int {
		return b.BookingDate.Compare(a.BookingDate)
	})

	statuses := PaymentStatusSummary(rows)

	return GuestRecapReport{
		Start:         stay.Start.Date,
		End:           stay.End.Date,
		Rows:          rows,
		PaymentStatus: statuses,
		Channels:      ChannelSummary(rows),
		TotalNightly:  SumBuckets(statuses),
	}
}

// PaymentStatusSummary sums the nightly price per payment status. Every status has a bucket.
func PaymentStatusSummary(bookings []bookingModel.Booking) []Bucket[bookingModel.PaymentStatus] {
	sums := Aggregate(
		bookings,
		func(b bookingModel.Booking) bool { return b.PaymentStatus.Valid() },
		func(b bookingModel.Booking) bookingModel.PaymentStatus { return b.PaymentStatus },
		NightlyRate,
	)

	return Buckets(bookingModel.PaymentStatuses(), sums)
}

// ChannelSummary sums the nightly price per OTA channel and Voucher.
func ChannelSummary(bookings []bookingModel.Booking) []Bucket[bookingModel.PaymentMethod] {
	sums := Aggregate(
		bookings,
		func(b bookingModel.Booking) bool { return b.PaymentMethod.IsOTAOrVoucher() },
		func(b bookingModel.Booking) bookingModel.PaymentMethod { return b.PaymentMethod },
		NightlyRate,
	)

	return Buckets(bookingModel.PrepaidChannels(), sums)
}

type BreakfastReport struct {
	Date     date.Date              `json:"date"`
	Rows     []bookingModel.Booking `json:"rows"`
	WithMeal int                    `json:"rbf"`
	RoomOnly int                    `json:"ro"`
	TotalPax int                    `json:"total_pax"`
}

// BreakfastManifest lists the bookings in house on target, checkIn <= target < checkOut,
// ordered by room number compared as text.
func BreakfastManifest(bookings []bookingModel.Booking, target date.Date) BreakfastReport {
	report := BreakfastReport{
		Date: target,
		Rows: []bookingModel.Booking{},
	}

	for _, b := range bookings {
		if !b.HasStay() || b.CheckInDate.After(target) || !b.CheckOutDate.After(target) {
			continue
		}

		report.Rows = append(report.Rows, b)
		report.TotalPax += b.Pax

		switch b.MealPlan {
		case bookingModel.MealPlanRoomBreakfast:
			report.WithMeal++
		case bookingModel.MealPlanRoomOnly:
			report.RoomOnly++
		}
	}

	slices.SortStableFunc(report.Rows, func(a, b bookingModel.Booking) int {
		return strings.Compare(a.RoomNumber, b.RoomNumber)
	})

	return report
}

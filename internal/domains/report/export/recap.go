package export

import (
	"fmt"

	bookingModel "hms/internal/domains/booking/model"
	"hms/internal/domains/report/engine"
	"hms/shared/date"
	"hms/shared/failure"
)

const (
	guestRecapSheet = "Guest Recap"
	breakfastSheet  = "Breakfast"

	openBound = "All"
)

var guestRecapColumns = []any{
	"Booking Date",
	"No Booking",
	"Guest Name",
	"Room No",
	"Check In Date",
	"Check Out Date",
	"Night",
	"Harga/Night",
	"Status Payment",
	"Payment Method",
	"Notes",
}

var breakfastColumns = []any{
	"Room No",
	"Guest Name",
	"Check In Date",
	"Check Out Date",
	"Plan (RBF/RO)",
	"Qty/Pax",
	"Breakfast Notes",
}

// GuestRecap writes the per-night summaries first, then the detail table.
func GuestRecap(report engine.GuestRecapReport) (File, error) {
	if len(report.Rows) == 0 {
		return File{}, failure.EmptyExport
	}

	start, end := boundLabel(report.Start), boundLabel(report.End)
	grid := [][]any{
		{"Guest Recap", start, end},
		{},
		{"Payment Status", "Total / Night"},
	}
	bold := []int{1, 3}

	for _, bucket := range report.PaymentStatus {
		grid = append(grid, []any{string(bucket.Key), bucket.Total})
	}

	grid = append(grid, []any{"TOTAL", report.TotalNightly}, []any{}, []any{"Channel", "Total / Night"})
	bold = append(bold, len(grid))

	for _, bucket := range report.Channels {
		grid = append(grid, []any{string(bucket.Key), bucket.Total})
	}

	grid = append(grid, []any{}, guestRecapColumns)
	bold = append(bold, len(grid))

	for _, b := range report.Rows {
		grid = append(grid, []any{
			b.BookingDate.String(),
			b.Code,
			b.GuestName,
			b.RoomNumber,
			b.CheckInDate.String(),
			b.CheckOutDate.String(),
			b.Nights,
			b.Price,
			string(b.PaymentStatus),
			string(b.PaymentMethod),
			orDash(b.Notes),
		})
	}

	name := fmt.Sprintf("Guest_Recap_%s_%s.xlsx", start, end)

	return writeGrid(name, guestRecapSheet, grid, len(guestRecapColumns), bold...)
}

// Breakfast writes the meal counts, then one row per room in house.
func Breakfast(report engine.BreakfastReport) (File, error) {
	if len(report.Rows) == 0 {
		return File{}, failure.EmptyExport
	}

	grid := [][]any{
		{"Breakfast", report.Date.String()},
		{string(bookingModel.MealPlanRoomBreakfast), report.WithMeal},
		{string(bookingModel.MealPlanRoomOnly), report.RoomOnly},
		{"Total Pax", report.TotalPax},
		{},
		breakfastColumns,
	}
	bold := []int{1, len(grid)}

	for _, b := range report.Rows {
		grid = append(grid, []any{
			b.RoomNumber,
			b.GuestName,
			b.CheckInDate.String(),
			b.CheckOutDate.String(),
			string(b.MealPlan),
			b.Pax,
			orDash(b.BreakfastNotes),
		})
	}

	return writeGrid(fmt.Sprintf("Breakfast_%s.xlsx", report.Date), breakfastSheet, grid, len(breakfastColumns), bold...)
}

func boundLabel(d date.Date) string {
	if d.IsZero() {
		return openBound
	}

	return d.String()
}

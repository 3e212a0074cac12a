package export

import (
	"fmt"

	bookingModel "hms/internal/domains/booking/model"
	"hms/shared/date"
	"hms/shared/failure"
)

const bookingSheet = "Bookings"

var bookingColumns = []string{
	"No Booking",
	"Room No",
	"Room Type",
	"Booking Date",
	"Guest Name",
	"Check In Date",
	"Check Out Date",
	"Night",
	"Nomor HP",
	"Harga/Night",
	"Total Harga",
	"Plan (RBF/RO)",
	"Qty/Pax",
	"Status Payment",
	"Payment Method",
	"Reservasi By",
	"Notes",
}

// BookingList exports the filtered booking list. The file is dated with today.
func BookingList(bookings []bookingModel.Booking, today date.Date) (File, error) {
	if len(bookings) == 0 {
		return File{}, failure.EmptyExport
	}

	records := make([]Record, len(bookings))
	for i, b := range bookings {
		records[i] = Record{
			"No Booking":     b.Code,
			"Room No":        b.RoomNumber,
			"Room Type":      string(b.RoomType),
			"Booking Date":   b.BookingDate.String(),
			"Guest Name":     b.GuestName,
			"Check In Date":  b.CheckInDate.String(),
			"Check Out Date": b.CheckOutDate.String(),
			"Night":          b.Nights,
			"Nomor HP":       b.Phone,
			"Harga/Night":    b.Price,
			"Total Harga":    b.Revenue(),
			"Plan (RBF/RO)":  string(b.MealPlan),
			"Qty/Pax":        b.Pax,
			"Status Payment": string(b.PaymentStatus),
			"Payment Method": string(b.PaymentMethod),
			"Reservasi By":   orDash(b.ReservationBy),
			"Notes":          orDash(b.Notes),
		}
	}

	return writeRecords(fmt.Sprintf("HMS_Bookings_%s.xlsx", today), bookingSheet, bookingColumns, records)
}

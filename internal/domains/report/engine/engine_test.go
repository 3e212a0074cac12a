package engine_test

import (
	"testing"
	"time"

	bookingModel "hms/internal/domains/booking/model"
	"hms/internal/domains/report/engine"
	"hms/shared/date"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	id, code, guest, room string
	booked, in, out       string
	price                 int64
	method                bookingModel.PaymentMethod
	status                bookingModel.PaymentStatus
	plan                  bookingModel.MealPlan
	pax                   int
}

func (f fixture) build() bookingModel.Booking {
	b := bookingModel.Booking{
		ID:            f.id,
		Code:          f.code,
		GuestName:     f.guest,
		RoomNumber:    f.room,
		BookingDate:   parse(f.booked),
		CheckInDate:   parse(f.in),
		CheckOutDate:  parse(f.out),
		Price:         f.price,
		PaymentMethod: f.method,
		PaymentStatus: f.status,
		MealPlan:      f.plan,
		Pax:           f.pax,
	}
	b.Normalize()

	return b
}

func parse(value string) date.Date {
	if value == "" {
		return date.Date{}
	}

	return date.MustParse(value)
}

func build(fixtures ...fixture) []bookingModel.Booking {
	res := make([]bookingModel.Booking, len(fixtures))
	for i, f := range fixtures {
		res[i] = f.build()
	}

	return res
}

func ids(bookings []bookingModel.Booking) []string {
	res := make([]string, len(bookings))
	for i, b := range bookings {
		res[i] = b.ID
	}

	return res
}

func stayRange(start, end string) date.Range {
	r := date.Range{}
	if start != "" {
		r.Start = date.Some(date.MustParse(start))
	}

	if end != "" {
		r.End = date.Some(date.MustParse(end))
	}

	return r
}

func TestFilterBookings_Search(t *testing.T) {
	bookings := build(
		fixture{id: "1", code: "BK-1001", guest: "John Doe"},
		fixture{id: "2", code: "BK-JOHN1", guest: "Alice"},
		fixture{id: "3", code: "BK-2002", guest: "Jane"},
		fixture{id: "4", code: "BK-9999", guest: "Bob"},
	)

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"guest name or code", "john", []string{"1", "2"}},
		{"upper case term", "JOHN", []string{"1", "2"}},
		{"blank search keeps all", "   ", []string{"1", "2", "3", "4"}},
		{"code fragment", "9999", []string{"4"}},
		{"no match", "zed", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.FilterBookings(bookings, engine.BookingFilter{Search: tt.search})

			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterBookings_Range(t *testing.T) {
	bookings := build(
		fixture{id: "before", in: "2024-04-28", out: "2024-05-01"},
		fixture{id: "spans", in: "2024-04-30", out: "2024-05-02"},
		fixture{id: "inside", in: "2024-05-02", out: "2024-05-04"},
		fixture{id: "after", in: "2024-05-05", out: "2024-05-06"},
		fixture{id: "undated"},
	)

	tests := []struct {
		name       string
		start, end string
		want       []string
	}{
		{"closed range", "2024-05-01", "2024-05-05", []string{"spans", "inside"}},
		{"open start", "", "2024-05-01", []string{"before", "spans"}},
		{"open end", "2024-05-04", "", []string{"after"}},
		{"fully open", "", "", []string{"before", "spans", "inside", "after", "undated"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.FilterBookings(bookings, engine.BookingFilter{Stay: stayRange(tt.start, tt.end)})

			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestAggregate_IsAdditive(t *testing.T) {
	bookings := build(
		fixture{id: "1", in: "2024-01-01", out: "2024-01-03", price: 430000, status: bookingModel.PaymentCash},
		fixture{id: "2", in: "2024-01-05", out: "2024-01-06", price: 738000, status: bookingModel.PaymentQris},
		fixture{id: "3", in: "2024-02-01", out: "2024-02-04", price: 938000, status: bookingModel.PaymentCash},
		fixture{id: "4", in: "2024-02-01", out: "2024-02-01", price: 430000, status: bookingModel.PaymentByOTA},
	)

	sums := engine.Aggregate(
		bookings,
		nil,
		func(b bookingModel.Booking) bookingModel.PaymentStatus { return b.PaymentStatus },
		engine.StayRevenue,
	)

	var groups, direct int64
	for _, total := range sums {
		groups += total
	}

	for _, b := range bookings {
		direct += b.Revenue()
	}

	assert.Equal(t, direct, groups)
	assert.Equal(t, int64(430000*2+938000*3), sums[bookingModel.PaymentCash])
	assert.Equal(t, int64(0), sums[bookingModel.PaymentByOTA], "zero nights earn nothing")
}

func TestOTAMonthlySummary(t *testing.T) {
	bookings := build(
		fixture{id: "1", in: "2024-01-10", out: "2024-01-12", price: 430000, method: bookingModel.ChannelTraveloka},
		fixture{id: "2", in: "2024-01-31", out: "2024-02-02", price: 738000, method: bookingModel.ChannelAgoda},
		fixture{id: "3", in: "2024-03-01", out: "2024-03-02", price: 938000, method: bookingModel.ChannelTraveloka},
		fixture{id: "4", in: "2024-03-01", out: "2024-03-05", price: 430000, method: bookingModel.ChannelWalkIn},
		fixture{id: "5", in: "2023-03-01", out: "2023-03-05", price: 430000, method: bookingModel.ChannelTiket},
		fixture{id: "6", in: "2024-12-30", out: "2025-01-02", price: 430000, method: bookingModel.ChannelTiktok},
		fixture{id: "7", in: "2024-06-01", out: "2024-06-02", price: 100000, method: bookingModel.ChannelVoucher},
	)

	report := engine.OTAMonthlySummary(bookings, 2024)

	require.Len(t, report.Rows, 12)
	assert.Equal(t, bookingModel.OTAChannels(), report.Channels)
	assert.Equal(t, "January", report.Rows[0].Label)

	assert.Equal(t, int64(860000), report.Rows[0].Channels[bookingModel.ChannelTraveloka])
	assert.Equal(t, int64(1476000), report.Rows[0].Channels[bookingModel.ChannelAgoda], "attributed to the check-in month")
	assert.Equal(t, int64(860000+1476000), report.Rows[0].Total)
	assert.Equal(t, int64(938000), report.Rows[2].Total, "walk-in is not an OTA")
	assert.Equal(t, int64(0), report.Rows[5].Total, "voucher is not an OTA")
	assert.Equal(t, int64(1290000), report.Rows[11].Channels[bookingModel.ChannelTiktok])

	assert.Equal(t, int64(860000+938000), report.ChannelTotals[bookingModel.ChannelTraveloka])
	assert.Equal(t, int64(0), report.ChannelTotals[bookingModel.ChannelTiket], "other years are excluded")

	var rowSum, columnSum int64
	for _, row := range report.Rows {
		rowSum += row.Total
	}

	for _, total := range report.ChannelTotals {
		columnSum += total
	}

	assert.Equal(t, report.GrandTotal, rowSum)
	assert.Equal(t, report.GrandTotal, columnSum)
	assert.Equal(t, int64(860000+1476000+938000+1290000), report.GrandTotal)
}

func TestOTAGuestRecap(t *testing.T) {
	bookings := build(
		fixture{id: "late", in: "2024-03-20", out: "2024-03-22", price: 430000, method: bookingModel.ChannelAgoda},
		fixture{id: "early", in: "2024-03-02", out: "2024-03-03", price: 738000, method: bookingModel.ChannelTraveloka},
		fixture{id: "april", in: "2024-04-02", out: "2024-04-05", price: 430000, method: bookingModel.ChannelAgoda},
		fixture{id: "direct", in: "2024-03-05", out: "2024-03-06", price: 430000, method: bookingModel.ChannelWalkIn},
		fixture{id: "old", in: "2023-03-05", out: "2023-03-06", price: 430000, method: bookingModel.ChannelAgoda},
	)

	march := time.March
	agoda := bookingModel.ChannelAgoda

	tests := []struct {
		name        string
		filter      engine.OTAGuestFilter
		want        []string
		wantRevenue int64
	}{
		{
			name:        "full year all channels",
			filter:      engine.OTAGuestFilter{Year: 2024},
			want:        []string{"early", "late", "april"},
			wantRevenue: 738000 + 860000 + 1290000,
		},
		{
			name:        "single month",
			filter:      engine.OTAGuestFilter{Year: 2024, Month: &march},
			want:        []string{"early", "late"},
			wantRevenue: 738000 + 860000,
		},
		{
			name:        "single channel",
			filter:      engine.OTAGuestFilter{Year: 2024, Channel: &agoda},
			want:        []string{"late", "april"},
			wantRevenue: 860000 + 1290000,
		},
		{
			name:   "other year",
			filter: engine.OTAGuestFilter{Year: 2022},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := engine.OTAGuestRecap(bookings, tt.filter)

			got := make([]string, len(report.Rows))
			for i, row := range report.Rows {
				got[i] = row.ID
				assert.Equal(t, row.Price*int64(row.Nights), row.Revenue)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRevenue, report.TotalRevenue)
		})
	}
}

func TestGuestRecap(t *testing.T) {
	bookings := build(
		fixture{id: "a", booked: "2024-05-01", in: "2024-05-10", out: "2024-05-12", price: 430000, status: bookingModel.PaymentCash, method: bookingModel.ChannelWalkIn},
		fixture{id: "b", booked: "2024-05-03", in: "2024-05-11", out: "2024-05-14", price: 738000, status: bookingModel.PaymentByOTA, method: bookingModel.ChannelAgoda},
		fixture{id: "c", booked: "2024-05-02", in: "2024-05-12", out: "2024-05-13", price: 938000, status: bookingModel.PaymentCash, method: bookingModel.ChannelVoucher},
		fixture{id: "d", booked: "2024-05-04", in: "2024-05-14", out: "2024-05-15", price: 430000, status: bookingModel.PaymentQris, method: bookingModel.ChannelTiket},
	)

	report := engine.GuestRecap(bookings, stayRange("2024-05-11", "2024-05-14"))

	assert.Equal(t, []string{"b", "c", "a"}, ids(report.Rows), "newest booking first, d starts on the range end")
	assert.Equal(t, "2024-05-11", report.Start.String())

	require.Len(t, report.PaymentStatus, 7)
	assert.Equal(t, bookingModel.PaymentCash, report.PaymentStatus[0].Key)
	assert.Equal(t, int64(430000+938000), report.PaymentStatus[0].Total, "raw nightly price, not stay revenue")
	assert.Equal(t, int64(738000), report.PaymentStatus[6].Total)
	assert.Equal(t, int64(0), report.PaymentStatus[4].Total)

	require.Len(t, report.Channels, 7)
	assert.Equal(t, bookingModel.ChannelAgoda, report.Channels[1].Key)
	assert.Equal(t, int64(738000), report.Channels[1].Total)
	assert.Equal(t, bookingModel.ChannelVoucher, report.Channels[6].Key)
	assert.Equal(t, int64(938000), report.Channels[6].Total)

	assert.Equal(t, int64(430000+738000+938000), report.TotalNightly)
	assert.Equal(t, report.TotalNightly, engine.SumBuckets(report.PaymentStatus))

	open := engine.GuestRecap(bookings, date.Range{})
	assert.Equal(t, []string{"d", "b", "c", "a"}, ids(open.Rows))
	assert.True(t, open.Start.IsZero())
}

func TestBreakfastManifest(t *testing.T) {
	bookings := build(
		fixture{id: "spans", room: "210", in: "2024-07-09", out: "2024-07-11", plan: bookingModel.MealPlanRoomBreakfast, pax: 2},
		fixture{id: "leaving", room: "101", in: "2024-07-08", out: "2024-07-10", plan: bookingModel.MealPlanRoomBreakfast, pax: 2},
		fixture{id: "arriving", room: "1010", in: "2024-07-10", out: "2024-07-12", plan: bookingModel.MealPlanRoomOnly, pax: 3},
		fixture{id: "later", room: "102", in: "2024-07-11", out: "2024-07-12", plan: bookingModel.MealPlanRoomBreakfast, pax: 1},
		fixture{id: "suite", room: "109", in: "2024-07-01", out: "2024-07-20", plan: bookingModel.MealPlanRoomBreakfast, pax: 4},
		fixture{id: "undated", room: "103", plan: bookingModel.MealPlanRoomBreakfast, pax: 2},
	)

	report := engine.BreakfastManifest(bookings, date.MustParse("2024-07-10"))

	assert.Equal(t, []string{"arriving", "suite", "spans"}, ids(report.Rows), "room numbers compare as text")
	assert.Equal(t, 2, report.WithMeal)
	assert.Equal(t, 1, report.RoomOnly)
	assert.Equal(t, 6, report.TotalPax, "room only carries no pax")
}

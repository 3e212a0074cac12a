package engine

import (
	"slices"
	"time"

	bookingModel "hms/internal/domains/booking/model"
)

type monthChannel struct {
	month   time.Month
	channel bookingModel.PaymentMethod
}

type OTASummaryRow struct {
	Month    time.Month                           `json:"month"`
	Label    string                               `json:"label"`
	Channels map[bookingModel.PaymentMethod]int64 `json:"channels"`
	Total    int64                                `json:"total"`
}

type OTASummaryReport struct {
	Year          int                                  `json:"year"`
	Channels      []bookingModel.PaymentMethod         `json:"channels"`
	Rows          []OTASummaryRow                      `json:"rows"`
	ChannelTotals map[bookingModel.PaymentMethod]int64 `json:"channel_totals"`
	GrandTotal    int64                                `json:"grand_total"`
}

// OTAMonthlySummary attributes stay revenue of OTA bookings to the month they check in.
// It always has twelve rows.
func OTAMonthlySummary(bookings []bookingModel.Booking, year int) OTASummaryReport {
	channels := bookingModel.OTAChannels()

	sums := Aggregate(
		bookings,
		func(b bookingModel.Booking) bool {
			return !b.CheckInDate.IsZero() && b.CheckInDate.Year() == year && b.PaymentMethod.IsOTA()
		},
		func(b bookingModel.Booking) monthChannel {
			return monthChannel{month: b.CheckInDate.Month(), channel: b.PaymentMethod}
		},
		StayRevenue,
	)

	report := OTASummaryReport{
		Year:          year,
		Channels:      channels,
		Rows:          make([]OTASummaryRow, 0, 12),
		ChannelTotals: make(map[bookingModel.PaymentMethod]int64, len(channels)),
	}

	for month := time.January; month <= time.December; month++ {
		row := OTASummaryRow{
			Month:    month,
			Label:    month.String(),
			Channels: make(map[bookingModel.PaymentMethod]int64, len(channels)),
		}

		for _, channel := range channels {
			value := sums[monthChannel{month: month, channel: channel}]

			row.Channels[channel] = value
			row.Total += value
			report.ChannelTotals[channel] += value
		}

		report.GrandTotal += row.Total
		report.Rows = append(report.Rows, row)
	}

	return report
}

// OTAGuestFilter selects OTA bookings by check-in year. A nil Month means the
// full year and a nil Channel means every OTA.
type OTAGuestFilter struct {
	Year    int
	Month   *time.Month
	Channel *bookingModel.PaymentMethod
}

func (f OTAGuestFilter) Match(b bookingModel.Booking) bool {
	if !b.PaymentMethod.IsOTA() || b.CheckInDate.IsZero() || b.CheckInDate.Year() != f.Year {
		return false
	}

	if f.Month != nil && b.CheckInDate.Month() != *f.Month {
		return false
	}

	if f.Channel != nil && b.PaymentMethod != *f.Channel {
		return false
	}

	return true
}

type OTAGuestRow struct {
	bookingModel.Booking
	Revenue int64 `json:"revenue"`
}

type OTAGuestReport struct {
	Year         int                         `json:"year"`
	Month        *time.Month                 `json:"month,omitempty"`
	Channel      *bookingModel.PaymentMethod `json:"channel,omitempty"`
	Rows         []OTAGuestRow               `json:"rows"`
	TotalNights  int                         `json:"total_nights"`
	TotalRevenue int64                       `json:"total_revenue"`
}

// OTAGuestRecap lists matching bookings by ascending check-in date.
func OTAGuestRecap(bookings []bookingModel.Booking, f OTAGuestFilter) OTAGuestReport {
	report := OTAGuestReport{
		Year:    f.Year,
		Month:   f.Month,
		Channel: f.Channel,
		Rows:    []OTAGuestRow{},
	}

	for _, b := range bookings {
		if !f.Match(b) {
			continue
		}

		report.Rows = append(report.Rows, OTAGuestRow{Booking: b, Revenue: b.Revenue()})
		report.TotalNights += b.Nights
		report.TotalRevenue += b.Revenue()
	}

	slices.SortStableFunc(report.Rows, func(a, b OTAGuestRow) int {
		return a.CheckInDate.Compare(b.CheckInDate)
	})

	return report
}

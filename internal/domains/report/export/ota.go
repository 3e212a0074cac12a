package export

import (
	"fmt"
	"strings"

	"hms/internal/domains/report/engine"
	"hms/shared/failure"
)

const (
	otaSummarySheet = "OTA Monthly Revenue"
	otaGuestSheet   = "OTA Guest Recap"

	grandTotalLabel = "GRAND TOTAL"
	allChannels     = "AllChannels"
	fullYear        = "FullYear"
)

var otaGuestColumns = []string{
	"Check In Date",
	"Check Out Date",
	"Month",
	"OTA Source",
	"Booking ID",
	"Guest Name",
	"Room",
	"Stay (Nights)",
	"Rate/Night",
	"Total Revenue",
	"Payment Status",
	"Notes",
}

// OTASummary exports the twelve month rows followed by a GRAND TOTAL row.
// A year without OTA revenue still exports, with zeros.
func OTASummary(report engine.OTASummaryReport) (File, error) {
	columns := make([]string, 0, len(report.Channels)+2)
	columns = append(columns, "Month")

	for _, channel := range report.Channels {
		columns = append(columns, string(channel))
	}

	columns = append(columns, "Total")

	records := make([]Record, 0, len(report.Rows)+1)
	for _, row := range report.Rows {
		record := Record{"Month": row.Label, "Total": row.Total}
		for _, channel := range report.Channels {
			record[string(channel)] = row.Channels[channel]
		}

		records = append(records, record)
	}

	footer := Record{"Month": grandTotalLabel, "Total": report.GrandTotal}
	for _, channel := range report.Channels {
		footer[string(channel)] = report.ChannelTotals[channel]
	}

	records = append(records, footer)

	return writeRecords(fmt.Sprintf("OTA_Revenue_Summary_%d.xlsx", report.Year), otaSummarySheet, columns, records)
}

func OTAGuests(report engine.OTAGuestReport) (File, error) {
	if len(report.Rows) == 0 {
		return File{}, failure.EmptyExport
	}

	records := make([]Record, len(report.Rows))
	for i, row := range report.Rows {
		records[i] = Record{
			"Check In Date":  row.CheckInDate.String(),
			"Check Out Date": row.CheckOutDate.String(),
			"Month":          row.CheckInDate.Month().String(),
			"OTA Source":     string(row.PaymentMethod),
			"Booking ID":     row.Code,
			"Guest Name":     row.GuestName,
			"Room":           fmt.Sprintf("%s (%s)", row.RoomNumber, row.RoomType),
			"Stay (Nights)":  row.Nights,
			"Rate/Night":     row.Price,
			"Total Revenue":  row.Revenue,
			"Payment Status": string(row.PaymentStatus),
			"Notes":          orDash(row.Notes),
		}
	}

	return writeRecords(OTAGuestsFileName(report), otaGuestSheet, otaGuestColumns, records)
}

func OTAGuestsFileName(report engine.OTAGuestReport) string {
	channel := allChannels
	if report.Channel != nil {
		channel = strings.Join(strings.Fields(string(*report.Channel)), "")
	}

	month := fullYear
	if report.Month != nil {
		month = report.Month.String()
	}

	return fmt.Sprintf("OTA_Guests_%s_%s_%d.xlsx", channel, month, report.Year)
}

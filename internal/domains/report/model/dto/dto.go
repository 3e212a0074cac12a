package dto

import (
	"fmt"
	"strconv"
	"time"

	bookingModel "hms/internal/domains/booking/model"
	"hms/internal/domains/report/engine"
	"hms/shared/date"
	"hms/shared/failure"
)

// AllChannels selects every OTA in the guest recap.
const AllChannels = "ALL"

type OTASummaryRequest struct {
	Year string `json:"year" validate:"omitempty,number,len=4"`
}

// YearOr falls back to the current year when no year was asked for.
func (r OTASummaryRequest) YearOr(today date.Date) (int, error) {
	return parseYear(r.Year, today)
}

type OTAGuestRequest struct {
	Year    string `json:"year"    validate:"omitempty,number,len=4"`
	Month   string `json:"month"   validate:"omitempty,number,min=1,max=2"`
	Channel string `json:"channel" validate:"omitempty,max=50"`
}

// ToFilter reads an empty month as the full year and an empty or ALL channel as every OTA.
func (r OTAGuestRequest) ToFilter(today date.Date) (engine.OTAGuestFilter, error) {
	year, err := parseYear(r.Year, today)
	if err != nil {
		return engine.OTAGuestFilter{}, err
	}

	filter := engine.OTAGuestFilter{Year: year}

	if r.Month != "" {
		n, err := strconv.Atoi(r.Month)
		if err != nil || n < 1 || n > 12 {
			return filter, failure.BadRequestFromString("month must be between 1 and 12") //nolint:wrapcheck
		}

		month := time.Month(n)
		filter.Month = &month
	}

	if r.Channel != "" && r.Channel != AllChannels {
		channel := bookingModel.PaymentMethod(r.Channel)
		if !channel.IsOTA() {
			return filter, failure.BadRequestFromString(fmt.Sprintf("channel %q is not an OTA", r.Channel)) //nolint:wrapcheck
		}

		filter.Channel = &channel
	}

	return filter, nil
}

type GuestRecapRequest struct {
	StartDate string `json:"start_date" validate:"datestr"`
	EndDate   string `json:"end_date"   validate:"datestr"`
}

func (r GuestRecapRequest) ToRange() (date.Range, error) {
	return parseRange(r.StartDate, r.EndDate)
}

type BreakfastRequest struct {
	Date string `json:"date" validate:"datestr"`
}

// DateOr falls back to today when no date was asked for.
func (r BreakfastRequest) DateOr(today date.Date) (date.Date, error) {
	d, err := date.ParseOptional(r.Date)
	if err != nil {
		return date.Date{}, failure.BadRequest(fmt.Errorf("date: %w", err)) //nolint:wrapcheck
	}

	return d.OrElse(today), nil
}

// ExportResponse is returned instead of the file itself when the export was published.
type ExportResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

func parseYear(value string, today date.Date) (int, error) {
	if value == "" {
		return today.Year(), nil
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid year %q", value)) //nolint:wrapcheck
	}

	return year, nil
}

func parseRange(start, end string) (date.Range, error) {
	var (
		r   date.Range
		err error
	)

	if r.Start, err = date.ParseOptional(start); err != nil {
		return r, failure.BadRequest(fmt.Errorf("start_date: %w", err)) //nolint:wrapcheck
	}

	if r.End, err = date.ParseOptional(end); err != nil {
		return r, failure.BadRequest(fmt.Errorf("end_date: %w", err)) //nolint:wrapcheck
	}

	return r, nil
}

// RangeKey is the cache key fragment of a range.
func RangeKey(r date.Range) string {
	return fmt.Sprintf("%s~%s", r.Start, r.End)
}

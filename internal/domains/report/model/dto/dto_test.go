package dto_test

import (
	"net/http"
	"testing"
	"time"

	bookingModel "hms/internal/domains/booking/model"
	"hms/internal/domains/report/model/dto"
	"hms/shared/date"
	"hms/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = date.MustParse("2024-05-02")

func TestOTASummaryRequest_YearOr(t *testing.T) {
	year, err := dto.OTASummaryRequest{}.YearOr(today)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)

	year, err = dto.OTASummaryRequest{Year: "2023"}.YearOr(today)
	require.NoError(t, err)
	assert.Equal(t, 2023, year)

	_, err = dto.OTASummaryRequest{Year: "twenty"}.YearOr(today)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestOTAGuestRequest_ToFilter(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.OTAGuestRequest
		wantYear    int
		wantMonth   *time.Month
		wantChannel *bookingModel.PaymentMethod
		wantErr     bool
	}{
		{
			name:     "defaults",
			req:      dto.OTAGuestRequest{},
			wantYear: 2024,
		},
		{
			name:     "all channels keyword",
			req:      dto.OTAGuestRequest{Year: "2023", Channel: dto.AllChannels},
			wantYear: 2023,
		},
		{
			name:        "month and channel",
			req:         dto.OTAGuestRequest{Year: "2024", Month: "3", Channel: "MG Holiday"},
			wantYear:    2024,
			wantMonth:   func() *time.Month { m := time.March; return &m }(),
			wantChannel: func() *bookingModel.PaymentMethod { c := bookingModel.ChannelMGHoliday; return &c }(),
		},
		{
			name:    "month out of range",
			req:     dto.OTAGuestRequest{Month: "13"},
			wantErr: true,
		},
		{
			name:    "channel that is not an OTA",
			req:     dto.OTAGuestRequest{Channel: "Walk In"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := tt.req.ToFilter(today)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, filter.Year)
			assert.Equal(t, tt.wantMonth, filter.Month)
			assert.Equal(t, tt.wantChannel, filter.Channel)
		})
	}
}

func TestGuestRecapRequest_ToRange(t *testing.T) {
	r, err := dto.GuestRecapRequest{StartDate: "2024-05-01"}.ToRange()
	require.NoError(t, err)
	assert.True(t, r.Start.Valid)
	assert.False(t, r.End.Valid)
	assert.Equal(t, "2024-05-01~", dto.RangeKey(r))

	_, err = dto.GuestRecapRequest{EndDate: "05/01/2024"}.ToRange()
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBreakfastRequest_DateOr(t *testing.T) {
	d, err := dto.BreakfastRequest{}.DateOr(today)
	require.NoError(t, err)
	assert.Equal(t, today, d)

	d, err = dto.BreakfastRequest{Date: "2024-07-10"}.DateOr(today)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-10", d.String())

	_, err = dto.BreakfastRequest{Date: "tomorrow"}.DateOr(today)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

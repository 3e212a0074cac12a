package report_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hms/config"
	otelMocks "hms/infras/otel/mocks"
	"hms/infras/s3"
	bookingModel "hms/internal/domains/booking/model"
	bookingRepo "hms/internal/domains/booking/repository"
	"hms/internal/domains/report/engine"
	"hms/internal/domains/report/export"
	"hms/internal/domains/report/service"
	"hms/internal/handlers/report"
	"hms/shared/cache"
	"hms/shared/constant"
	"hms/shared/date"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []bookingModel.Booking {
	res := []bookingModel.Booking{
		{
			ID:            "a",
			Code:          "BK-1001",
			RoomNumber:    "101",
			GuestName:     "John Doe",
			BookingDate:   date.MustParse("2024-07-01"),
			CheckInDate:   date.MustParse("2024-07-09"),
			CheckOutDate:  date.MustParse("2024-07-11"),
			Price:         430000,
			MealPlan:      bookingModel.MealPlanRoomBreakfast,
			Pax:           2,
			PaymentStatus: bookingModel.PaymentByOTA,
			PaymentMethod: bookingModel.ChannelAgoda,
		},
		{
			ID:            "b",
			Code:          "BK-1002",
			RoomNumber:    "102",
			GuestName:     "Jane",
			BookingDate:   date.MustParse("2024-07-02"),
			CheckInDate:   date.MustParse("2024-07-08"),
			CheckOutDate:  date.MustParse("2024-07-10"),
			Price:         430000,
			MealPlan:      bookingModel.MealPlanRoomBreakfast,
			Pax:           1,
			PaymentStatus: bookingModel.PaymentCash,
			PaymentMethod: bookingModel.ChannelWalkIn,
		},
	}

	for i := range res {
		res[i].Normalize()
	}

	return res
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	ot := otelMocks.NewOtel()

	repo := bookingRepo.New(ot)
	for _, b := range seed() {
		require.NoError(t, repo.Insert(context.Background(), b))
	}

	today := func() date.Date { return date.MustParse("2024-07-10") }
	svc := service.NewWithClock(repo, cfg, cache.NewNoopCache(), export.NewPublisher(cfg, s3.New(cfg, ot), ot), ot, today)

	handler := report.New(svc, ot)
	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func data[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))

	return out.Data
}

func TestGetOTASummary(t *testing.T) {
	router := newRouter(t)

	recorder := get(t, router, "/reports/ota/summary?year=2024")
	require.Equal(t, http.StatusOK, recorder.Code)

	res := data[engine.OTASummaryReport](t, recorder)
	assert.Equal(t, 2024, res.Year)
	assert.Len(t, res.Rows, 12)
	assert.Equal(t, int64(860000), res.GrandTotal)
	assert.Equal(t, int64(860000), res.ChannelTotals[bookingModel.ChannelAgoda])

	assert.Equal(t, http.StatusBadRequest, get(t, router, "/reports/ota/summary?year=24").Code)
}

func TestGetOTAGuests(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name  string
		query string
		code  int
		rows  int
	}{
		{"whole year", "?year=2024", http.StatusOK, 1},
		{"july agoda", "?year=2024&month=7&channel=Agoda", http.StatusOK, 1},
		{"june", "?year=2024&month=6", http.StatusOK, 0},
		{"month out of range", "?year=2024&month=13", http.StatusBadRequest, 0},
		{"walk in is not an ota", "?year=2024&channel=Walk%20In", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(t, router, "/reports/ota/guests"+tt.query)
			require.Equal(t, tt.code, recorder.Code)

			if tt.code == http.StatusOK {
				assert.Len(t, data[engine.OTAGuestReport](t, recorder).Rows, tt.rows)
			}
		})
	}
}

func TestGetGuestRecap(t *testing.T) {
	router := newRouter(t)

	recorder := get(t, router, "/reports/guests?start_date=2024-07-01&end_date=2024-07-31")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, data[engine.GuestRecapReport](t, recorder).Rows, 2)

	recorder = get(t, router, "/reports/guests?start_date=2024-07-10&end_date=2024-07-31")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, data[engine.GuestRecapReport](t, recorder).Rows, 1)

	assert.Equal(t, http.StatusBadRequest, get(t, router, "/reports/guests?start_date=July").Code)
}

func TestGetBreakfast(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		query    string
		rows     int
		totalPax int
	}{
		{"both in house", "?date=2024-07-09", 2, 3},
		{"defaults to today", "", 1, 2},
		{"nobody in house", "?date=2024-08-01", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(t, router, "/reports/breakfast"+tt.query)
			require.Equal(t, http.StatusOK, recorder.Code)

			res := data[engine.BreakfastReport](t, recorder)
			assert.Len(t, res.Rows, tt.rows)
			assert.Equal(t, tt.totalPax, res.TotalPax)
		})
	}
}

func TestExports(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		target   string
		code     int
		fileName string
	}{
		{"ota summary", "/reports/ota/summary/export?year=2024", http.StatusOK, "OTA_Revenue_Summary_2024.xlsx"},
		{"ota summary without bookings", "/reports/ota/summary/export?year=2020", http.StatusOK, "OTA_Revenue_Summary_2020.xlsx"},
		{"ota guests", "/reports/ota/guests/export?year=2024", http.StatusOK, "OTA_Guests_AllChannels_FullYear_2024.xlsx"},
		{"guest recap", "/reports/guests/export?start_date=2024-07-01", http.StatusOK, "Guest_Recap_2024-07-01_All.xlsx"},
		{"breakfast", "/reports/breakfast/export?date=2024-07-09", http.StatusOK, "Breakfast_2024-07-09.xlsx"},
		{"empty breakfast", "/reports/breakfast/export?date=2024-08-01", http.StatusBadRequest, ""},
		{"publishing disabled", "/reports/breakfast/export?date=2024-07-09&publish=true", http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(t, router, tt.target)
			require.Equal(t, tt.code, recorder.Code)

			if tt.fileName == "" {
				return
			}

			assert.Equal(t, constant.ContentTypeXLSX, recorder.Header().Get(constant.RequestHeaderContentType))
			assert.Equal(t, `attachment; filename="`+tt.fileName+`"`, recorder.Header().Get(constant.RequestHeaderContentDisposition))
			assert.NotZero(t, recorder.Body.Len())
		})
	}
}

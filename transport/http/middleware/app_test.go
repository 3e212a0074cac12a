package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hms/config"
	otelMocks "hms/infras/otel/mocks"
	"hms/shared/cache"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	"hms/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func stored(count int) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, value any) error {
		*value.(*int) = count

		return nil
	}
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(m *cacheMocks.MockCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name: "first request in window",
			setup: func(m *cacheMocks.MockCache) {
				m.EXPECT().Get(gomock.Any(), "limiter:10.0.0.1:front-desk", gomock.Any()).Return(cache.Nil)
				m.EXPECT().Save(gomock.Any(), "limiter:10.0.0.1:front-desk", 1, 60).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name: "last allowed request",
			setup: func(m *cacheMocks.MockCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(stored(2))
				m.EXPECT().Save(gomock.Any(), gomock.Any(), 3, 60).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name: "over the limit",
			setup: func(m *cacheMocks.MockCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(stored(3))
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "cache unavailable lets traffic through",
			setup: func(m *cacheMocks.MockCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cacheMock := cacheMocks.NewMockCache(ctrl)
			tt.setup(cacheMock)

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(), cacheMock)

			request := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			request.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			request.Header.Set(constant.RequestHeaderUserAgent, "front-desk")

			recorder := httptest.NewRecorder()
			app.RateLimit()(okHandler).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, cacheMocks.NewMockCache(ctrl))

	recorder := httptest.NewRecorder()
	app.RateLimit()(okHandler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://desk.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache.NewNoopCache())

	request := httptest.NewRequest(http.MethodGet, "/v1/public/board", nil)
	request.Header.Set("Origin", "https://desk.example.com")

	recorder := httptest.NewRecorder()
	app.CORS()(okHandler).ServeHTTP(recorder, request)

	assert.Equal(t, "https://desk.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))

	disabled := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, cache.NewNoopCache())

	recorder = httptest.NewRecorder()
	disabled.CORS()(okHandler).ServeHTTP(recorder, request)

	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestTracing(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, cache.NewNoopCache())

	recorder := httptest.NewRecorder()
	app.Tracing(okHandler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"

	"hms/config"
	"hms/infras/kafka"
	otelMocks "hms/infras/otel/mocks"
	"hms/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestHealthFollowsShutdownState(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction

	h := &HTTP{Config: cfg, Otel: otelMocks.NewOtel(), Kafka: kafka.New(cfg)}
	h.setState(ServerStateReady)

	check := func() int {
		recorder := httptest.NewRecorder()
		h.health(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, check())

	signals := make(chan os.Signal, 1)
	done := make(chan struct{})

	go func() {
		h.respondToSigterm(signals)
		close(done)
	}()

	signals <- syscall.SIGTERM

	// health keeps being polled while the signal handler moves the state.
	for waiting := true; waiting; {
		select {
		case <-done:
			waiting = false
		default:
			check()
		}
	}

	assert.Equal(t, ServerStateInCleanupPeriod, h.State())
	assert.Equal(t, http.StatusServiceUnavailable, check())
}

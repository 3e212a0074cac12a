package otel_test

import (
	"context"
	"errors"
	"testing"

	"hms/config"
	"hms/infras/otel"

	"github.com/stretchr/testify/assert"
)

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hms-test"

	o := otel.New(cfg)

	ctx, scope := o.NewScope(context.Background(), "test", "test.Span")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"room":   "101",
		"nights": 2,
		"ota":    true,
		"rooms":  []string{"101", "102"},
		"price":  int64(430000),
	})
	scope.AddEvent("checked")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	assert.NoError(t, o.Shutdown(context.Background()))
}

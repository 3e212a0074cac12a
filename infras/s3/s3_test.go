package s3_test

import (
	"context"
	"net/http"
	"testing"

	"hms/config"
	"hms/infras/otel/mocks"
	"hms/infras/s3"
	"hms/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestNewDisabled(t *testing.T) {
	client := s3.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, client.Enabled())

	_, err := client.UploadFileBytes(context.Background(), "", "exports", "a.xlsx", "", []byte("x"))
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/exports/a.xlsx", s3.PublicURL("https://cdn.example.com/", "exports/a.xlsx"))
	assert.Equal(t, "https://cdn.example.com/exports/a.xlsx", s3.PublicURL("https://cdn.example.com", "exports/a.xlsx"))
}

package export_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hms/config"
	otelMocks "hms/infras/otel/mocks"
	s3Mocks "hms/infras/s3/mocks"
	"hms/internal/domains/report/export"
	"hms/shared/constant"
	"hms/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	file := export.File{Name: "Breakfast_2024-03-11.xlsx", Content: []byte("xlsx")}

	tests := []struct {
		name     string
		setup    func(m *s3Mocks.MockS3)
		wantURL  string
		wantCode int
	}{
		{
			name: "uploads into the export directory",
			setup: func(m *s3Mocks.MockS3) {
				m.EXPECT().
					UploadFileBytes(gomock.Any(), "reports", "exports", file.Name, constant.ContentTypeXLSX, file.Content).
					Return("https://files.example.com/exports/Breakfast_2024-03-11.xlsx", nil)
			},
			wantURL: "https://files.example.com/exports/Breakfast_2024-03-11.xlsx",
		},
		{
			name: "publishing switched off",
			setup: func(m *s3Mocks.MockS3) {
				m.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", failure.Unavailable("export publishing is disabled"))
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "upload failure",
			setup: func(m *s3Mocks.MockS3) {
				m.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := s3Mocks.NewMockS3(ctrl)
			tt.setup(storage)

			cfg := &config.Config{}
			cfg.External.S3.BucketName = "reports"

			publisher := export.NewPublisher(cfg, storage, otelMocks.NewOtel())

			url, err := publisher.Publish(context.Background(), file)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

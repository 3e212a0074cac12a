package export

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	"hms/infras/s3"
	"hms/shared/constant"

	"github.com/rs/zerolog/log"
)

const exportDirectory = "exports"

// Publisher uploads a rendered export and returns where it can be downloaded.
type Publisher interface {
	Enabled() bool
	Publish(ctx context.Context, file File) (url string, err error)
}

type publisherImpl struct {
	config *config.Config
	s3     s3.S3
	otel   otel.Otel
}

func NewPublisher(cfg *config.Config, s3 s3.S3, otel otel.Otel) Publisher {
	return &publisherImpl{
		config: cfg,
		s3:     s3,
		otel:   otel,
	}
}

func (p *publisherImpl) Enabled() bool {
	return p.s3.Enabled()
}

func (p *publisherImpl) Publish(ctx context.Context, file File) (url string, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelExportScopeName, constant.OtelExportScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("file.name", file.Name)

	url, err = p.s3.UploadFileBytes(ctx, p.config.External.S3.BucketName, exportDirectory, file.Name, file.ContentType(), file.Content)
	if err != nil {
		log.Error().Err(err).Str("file", file.Name).Msg("failed to publish export")

		return constant.Empty, fmt.Errorf("failed to publish export: %w", err)
	}

	return url, nil
}

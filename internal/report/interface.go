package report

import (
	"context"

	"usernotes-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate builds the CSV result report of a finished run, uploads
	// it to object storage and records it on the run. Generating again
	// replaces the stored file.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)

	// Download returns a presigned download URL for the stored report.
	Download(ctx context.Context, sc model.Scope, input DownloadInput) (DownloadOutput, error)
}

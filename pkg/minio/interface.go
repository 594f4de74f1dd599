package minio

import (
	"context"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO is the object storage client used for report files.
type MinIO interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error

	EnsureBucket(ctx context.Context, bucketName string) error
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	DownloadFile(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, bucketName, objectName string) error
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)
}

// NewMinIO creates a new MinIO client. Returns the MinIO interface.
func NewMinIO(cfg Config) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  disableCompression,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}

func validateConfig(cfg Config) error {
	if cfg.Endpoint == "" {
		return ErrEndpointRequired
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return ErrCredentialsNeeded
	}
	return nil
}

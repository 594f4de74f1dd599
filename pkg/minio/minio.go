package minio

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// --- implMinIO: connection ---

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		m.connected = false
		return err
	}
	m.connected = true
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return ErrNotConnected
	}
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return err
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// --- implMinIO: bucket ---

// EnsureBucket creates the bucket if it does not already exist.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region})
}

// --- implMinIO: objects ---

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if req.Reader == nil {
		return nil, ErrNilReader
	}
	if req.Size > MaxObjectSizeBytes {
		return nil, ErrObjectTooLarge
	}

	opts := minio.PutObjectOptions{ContentType: req.ContentType}
	if req.Metadata != nil {
		opts.UserMetadata = req.Metadata
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		BucketName:   info.Bucket,
		ObjectName:   info.Key,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
	}, nil
}

func (m *implMinIO) DownloadFile(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	obj, err := m.minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy, stat to surface missing objects early.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	return m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
}

func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	expiry := req.Expiry
	if expiry <= 0 {
		expiry = DefaultPresignedExpiry
	}
	if expiry > MaxPresignedExpiry {
		return nil, ErrExpiryTooLong
	}

	params := url.Values{}
	if req.FileName != "" {
		params.Set("response-content-disposition", `attachment; filename="`+req.FileName+`"`)
	}

	u, err := m.minioClient.PresignedGetObject(ctx, req.BucketName, req.ObjectName, expiry, params)
	if err != nil {
		return nil, err
	}

	return &PresignedURLResponse{
		URL:       u.String(),
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

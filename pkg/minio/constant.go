package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
)

const (
	// DefaultPresignedExpiry is the default presigned URL expiry.
	DefaultPresignedExpiry = 15 * time.Minute
	// MaxPresignedExpiry is the maximum presigned URL expiry (7 days).
	MaxPresignedExpiry = 7 * 24 * time.Hour
	// MaxObjectSizeBytes is the maximum upload object size (1GB).
	MaxObjectSizeBytes = 1 * 1024 * 1024 * 1024
)

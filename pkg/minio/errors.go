package minio

import "errors"

var (
	ErrEndpointRequired  = errors.New("minio endpoint is required")
	ErrCredentialsNeeded = errors.New("minio access key and secret key are required")
	ErrNotConnected      = errors.New("minio client is not connected")
	ErrNilReader         = errors.New("upload reader is nil")
	ErrObjectTooLarge    = errors.New("object exceeds the maximum allowed size")
	ErrExpiryTooLong     = errors.New("presigned url expiry exceeds the maximum allowed")
)

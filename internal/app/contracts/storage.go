package contracts

import (
	"context"
	"time"
)

// StorageService hands out presigned URLs; the service never proxies file
// bytes itself.
type StorageService interface {
	PresignedPutURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}

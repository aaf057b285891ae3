package utils

import (
	"context"
	"time"
)

const DefaultStorageTimeout = 5 * time.Second

// WithStorageTimeout bounds a persistence call. A non-positive duration falls
// back to the default.
func WithStorageTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultStorageTimeout
	}

	return context.WithTimeout(ctx, d)
}

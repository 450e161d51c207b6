// File: services/storage/interface.go
package storage

import (
	"context"
	"time"
)

// StorageService resolves stored image keys into display URLs. The menu core
// never uploads or deletes media; it only needs time-limited read access.
type StorageService interface {
	// GetSecureDownloadURL returns a signed, short-lived URL for the given
	// public identifier.
	GetSecureDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

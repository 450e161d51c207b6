// File: services/storage/cloudinary_test.go
package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSecureDownloadURLFormat(t *testing.T) {
	svc := &CloudinaryStorageService{cloudName: "demo", apiSecret: "secret"}

	url, err := svc.GetSecureDownloadURL(context.Background(), "menu/idli.jpg", 15*time.Minute)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://res.cloudinary.com/demo/image/authenticated/s--"), url)
	assert.True(t, strings.HasSuffix(url, "/menu/idli.jpg"), url)
	assert.Contains(t, url, "/expires_")
}

func TestGetSecureDownloadURLFallsBackToUnsignedWithoutSecret(t *testing.T) {
	cld, err := cloudinary.NewFromParams("demo", "key", "")
	require.NoError(t, err)
	svc := NewCloudinaryStorageService(cld, "demo", "", nil)

	url, err := svc.GetSecureDownloadURL(context.Background(), "menu/idli.jpg", 15*time.Minute)

	require.NoError(t, err)
	assert.NotContains(t, url, "s--")
	assert.Contains(t, url, "demo")
	assert.Contains(t, url, "menu/idli.jpg")
}

func TestGetSecureDownloadURLRejectsEmptyKey(t *testing.T) {
	svc := &CloudinaryStorageService{cloudName: "demo", apiSecret: "secret"}

	_, err := svc.GetSecureDownloadURL(context.Background(), "", time.Minute)
	assert.Error(t, err)
}

func TestSignatureMatchesManualComputation(t *testing.T) {
	svc := &CloudinaryStorageService{cloudName: "demo", apiSecret: "secret"}

	url, err := svc.GetSecureDownloadURL(context.Background(), "k1", time.Hour)
	require.NoError(t, err)

	// Recover expires_at from the URL and recompute the signature.
	var expiresAt int64
	parts := strings.Split(url, "/expires_")
	require.Len(t, parts, 2)
	_, err = fmt.Sscanf(parts[1], "%d/k1", &expiresAt)
	require.NoError(t, err)

	expected := computeSHA1(fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, "k1", "secret"))
	assert.Contains(t, url, "s--"+expected+"--")
}

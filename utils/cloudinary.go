// File: utils/cloudinary.go
package utils

import (
	"fmt"

	"hostelhub/config"
	"hostelhub/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// Cloudinary initializes the Cloudinary-backed signed URL resolver from the
// application configuration.
func Cloudinary() (storage.StorageService, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	apiKey := config.AppConfig.CloudinaryAPIKey
	apiSecret := config.AppConfig.CloudinaryAPISecret

	if cloudName == "" || apiKey == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	if apiSecret == "" {
		zap.L().Warn("Cloudinary API secret not set; image URLs will not be signed")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}

	return storage.NewCloudinaryStorageService(cld, cloudName, apiSecret, GetCacheClient()), nil
}

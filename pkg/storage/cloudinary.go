package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Optimized image params for fast frontend loading
const imageEager = "q_auto,f_auto,w_1600"

var eagerAsyncFalse = false

// CloudinaryStorage uploads to Cloudinary with eager optimization. Used
// when the host's local disk is ephemeral and /uploads would not survive a
// redeploy.
type CloudinaryStorage struct {
	cloudName string
	uploader  *uploader.API
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStorage{cloudName: cloudName, uploader: up}, nil
}

func (s *CloudinaryStorage) Save(ctx context.Context, filename string, src io.Reader) (string, error) {
	publicID := strings.TrimSuffix(filename, filepath.Ext(filename))
	result, err := s.uploader.Upload(ctx, src, uploader.UploadParams{
		Folder:     "mocar",
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"archery/app_error"
	"archery/metrics"
	"archery/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const MaxUploadBytes = 5 << 20

var (
	ImageTypes    = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}
	DocumentTypes = []string{"application/pdf"}
)

// ObjectStorage is implemented by client.StorageClient.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) error
	PublicURL(key string) string
}

type AssetService struct {
	storage ObjectStorage
}

func NewAssetService(storage ObjectStorage) *AssetService {
	return &AssetService{storage: storage}
}

// DetectType sniffs the content type and checks it against the allowed list.
func DetectType(data []byte, allowed []string) (contentType string, extension string, err error) {
	if len(data) == 0 {
		return "", "", app_error.Validation("file is empty")
	}
	if len(data) > MaxUploadBytes {
		return "", "", app_error.Validation(fmt.Sprintf("file exceeds %d bytes", MaxUploadBytes))
	}
	mtype := mimetype.Detect(data)
	contentType = strings.Split(mtype.String(), ";")[0]
	if !utils.Contains(allowed, contentType) {
		return "", "", app_error.Validation(fmt.Sprintf("file type %s is not allowed", contentType))
	}
	return contentType, mtype.Extension(), nil
}

// Upload stores data under <prefix>/<uuid><ext> and returns its public URL.
func (s *AssetService) Upload(ctx context.Context, prefix string, data []byte, allowed []string) (string, error) {
	contentType, extension, err := DetectType(data, allowed)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), extension)
	if err := s.storage.Upload(ctx, key, contentType, data); err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	metrics.UploadBytes.WithLabelValues(prefix).Add(float64(len(data)))
	return s.storage.PublicURL(key), nil
}

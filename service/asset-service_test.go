package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"archery/app_error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	objects map[string][]byte
}

func (m *memoryStorage) Upload(_ context.Context, key string, _ string, data []byte) error {
	m.objects[key] = data
	return nil
}

func (m *memoryStorage) PublicURL(key string) string {
	return "https://cdn.example/" + key
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestDetectType(t *testing.T) {
	contentType, extension, err := DetectType(pngHeader, ImageTypes)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, ".png", extension)

	_, _, err = DetectType([]byte("%PDF-1.7\n"), ImageTypes)
	assert.ErrorIs(t, err, app_error.ErrValidation)

	_, _, err = DetectType(nil, ImageTypes)
	assert.ErrorIs(t, err, app_error.ErrValidation)

	_, _, err = DetectType(bytes.Repeat([]byte{0}, MaxUploadBytes+1), ImageTypes)
	assert.ErrorIs(t, err, app_error.ErrValidation)
}

func TestUploadStoresUnderPrefix(t *testing.T) {
	storage := &memoryStorage{objects: map[string][]byte{}}
	assets := NewAssetService(storage)

	url, err := assets.Upload(context.Background(), "avatars", pngHeader, ImageTypes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example/avatars/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.Len(t, storage.objects, 1)
}

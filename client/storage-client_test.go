package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageUpload(t *testing.T) {
	var gotPath, gotAuth, gotType, gotUpsert string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotUpsert = r.Header.Get("x-upsert")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	storage, err := NewStorageClient(server.URL, "service-key", "assets")
	require.NoError(t, err)

	err = storage.Upload(context.Background(), "avatars/abc.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/assets/avatars/abc.png", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, "png-bytes", string(gotBody))
}

func TestStorageUploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"denied"}`))
	}))
	defer server.Close()

	storage, err := NewStorageClient(server.URL, "bad-key", "assets")
	require.NoError(t, err)

	err = storage.Upload(context.Background(), "logos/x.png", "image/png", []byte{1})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
}

func TestStoragePublicAndSignedURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/sign/assets/documents/rules.pdf", r.URL.Path)
		var body map[string]int
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, 3600, body["expiresIn"])
		_, _ = w.Write([]byte(`{"signedURL":"/object/sign/assets/documents/rules.pdf?token=t0k"}`))
	}))
	defer server.Close()

	storage, err := NewStorageClient(server.URL, "k", "assets")
	require.NoError(t, err)

	assert.Equal(t, server.URL+"/storage/v1/object/public/assets/logos/a.png", storage.PublicURL("logos/a.png"))

	signed, err := storage.SignedURL(context.Background(), "documents/rules.pdf", 3600)
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/storage/v1/object/sign/assets/documents/rules.pdf?token=t0k", signed)
}

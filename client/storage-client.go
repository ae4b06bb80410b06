package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// StorageClient talks to a Supabase-compatible object storage API.
type StorageClient struct {
	http   *HttpClient
	apiKey string
	bucket string
}

func NewStorageClient(baseURL string, apiKey string, bucket string) (*StorageClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/storage/v1")
	if err != nil {
		return nil, err
	}
	return &StorageClient{
		http:   NewHttpClient(u, "archery-backend", 20),
		apiKey: apiKey,
		bucket: bucket,
	}, nil
}

func (s *StorageClient) Upload(ctx context.Context, key string, contentType string, data []byte) error {
	resp, err := s.http.SendRequest(ctx, RequestArgs{
		Endpoint:   "object/%s/%s",
		PathParams: []string{s.bucket, key},
		Method:     "POST",
		Token:      s.apiKey,
		Body:       bytes.NewReader(data),
		Headers: map[string]string{
			"Content-Type": contentType,
			"x-upsert":     "true",
		},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkResponse(resp)
}

func (s *StorageClient) Delete(ctx context.Context, key string) error {
	resp, err := s.http.SendRequest(ctx, RequestArgs{
		Endpoint:   "object/%s/%s",
		PathParams: []string{s.bucket, key},
		Method:     "DELETE",
		Token:      s.apiKey,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkResponse(resp)
}

func (s *StorageClient) PublicURL(key string) string {
	return s.http.URL("object/public/%s/%s", s.bucket, key).String()
}

type signRequest struct {
	ExpiresIn int `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

// SignedURL returns a time limited download link for a private object.
func (s *StorageClient) SignedURL(ctx context.Context, key string, expiresInSeconds int) (string, error) {
	body, err := json.Marshal(signRequest{ExpiresIn: expiresInSeconds})
	if err != nil {
		return "", err
	}
	resp, err := s.http.SendRequest(ctx, RequestArgs{
		Endpoint:   "object/sign/%s/%s",
		PathParams: []string{s.bucket, key},
		Method:     "POST",
		Token:      s.apiKey,
		Body:       bytes.NewReader(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if err := checkResponse(resp); err != nil {
		return "", err
	}
	var signed signResponse
	if err := json.NewDecoder(resp.Body).Decode(&signed); err != nil {
		return "", err
	}
	if signed.SignedURL == "" {
		return "", fmt.Errorf("storage returned no signed url")
	}
	return strings.TrimRight(s.http.baseURL.String(), "/") + "/" + strings.TrimPrefix(signed.SignedURL, "/"), nil
}

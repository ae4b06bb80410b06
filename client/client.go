package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

type HttpClient struct {
	baseURL   *url.URL
	userAgent string
	limiter   *rate.Limiter
	client    *http.Client
}

func NewHttpClient(baseURL *url.URL, userAgent string, maxRequestsPerSecond float64) *HttpClient {
	return &HttpClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1),
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type RequestArgs struct {
	Endpoint    string
	Token       string
	Method      string
	PathParams  []string
	QueryParams map[string]string
	Body        io.Reader
	Headers     map[string]string
}

func (c *HttpClient) URL(endpoint string, pathParams ...string) *url.URL {
	params := make([]any, len(pathParams))
	for i, v := range pathParams {
		params[i] = v
	}
	path := strings.TrimRight(c.baseURL.Path, "/") + "/" + fmt.Sprintf(endpoint, params...)
	return c.baseURL.ResolveReference(&url.URL{Path: path})
}

func (c *HttpClient) SendRequest(ctx context.Context, requestArgs RequestArgs) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	method := requestArgs.Method
	if method == "" {
		method = http.MethodGet
	}

	requestUrl := c.URL(requestArgs.Endpoint, requestArgs.PathParams...)
	if requestArgs.QueryParams != nil {
		query := requestUrl.Query()
		for k, v := range requestArgs.QueryParams {
			query.Add(k, v)
		}
		requestUrl.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestUrl.String(), requestArgs.Body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if requestArgs.Token != "" {
		req.Header.Set("Authorization", "Bearer "+requestArgs.Token)
	}
	for k, v := range requestArgs.Headers {
		req.Header.Set(k, v)
	}
	return c.client.Do(req)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
}

package orderform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/frontend-talks/order-request-contract-tests/framework"
)

// APIError is returned when the backend answers with an unexpected status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s returned HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

type apiClient struct {
	baseURL   string
	http      *http.Client
	userAgent string
	logger    framework.Logger
}

func (c *apiClient) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

func (c *apiClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	c.logger.Printf("GET %s", req.URL.RequestURI())
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode, Body: string(data)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("malformed response from %s: %w", path, err)
	}
	return nil
}

// postJSON sends body and succeeds only if the response status is the expected one.
func (c *apiClient) postJSON(ctx context.Context, path string, body interface{}, header http.Header, expectStatus int) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	c.logger.Printf("POST %s: %s", path, string(data))
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != expectStatus {
		respData, _ := io.ReadAll(resp.Body)
		return &APIError{Method: http.MethodPost, Path: path, StatusCode: resp.StatusCode, Body: string(respData)}
	}
	return nil
}

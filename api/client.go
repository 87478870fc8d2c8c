// Package api talks to the remote listings backend over its two /markers endpoints.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-json-experiment/json"

	"immo-map/models"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("markers api returned status %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the backend at baseURL. A nil httpClient
// falls back to http.DefaultClient. No timeout is applied beyond what the
// caller's context carries.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchMarkers issues GET /markers and decodes the listing array.
func (c *Client) FetchMarkers(ctx context.Context) ([]models.Marker, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/markers", nil)
	if err != nil {
		return nil, fmt.Errorf("build markers request: %w", err)
	}

	var markers []models.Marker
	if err := c.do(req, &markers); err != nil {
		return nil, fmt.Errorf("fetch markers: %w", err)
	}
	if markers == nil {
		markers = []models.Marker{}
	}
	return markers, nil
}

// SaveMarker issues POST /markers with the listing payload and returns the
// confirmed marker echoed by the backend.
func (c *Client) SaveMarker(ctx context.Context, payload models.ListingPayload) (models.Marker, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.Marker{}, fmt.Errorf("encode listing: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/markers", bytes.NewReader(body))
	if err != nil {
		return models.Marker{}, fmt.Errorf("build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var saved models.Marker
	if err := c.do(req, &saved); err != nil {
		return models.Marker{}, fmt.Errorf("save marker: %w", err)
	}
	return saved, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.UnmarshalRead(resp.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

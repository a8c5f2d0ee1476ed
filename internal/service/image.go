package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ImageStore is the internal image-hosting service. The one operation
// the backend consumes is destroying an original once its owning
// artwork is removed.
type ImageStore interface {
	Destroy(ctx context.Context, filename string) (bool, error)
}

// ImageClient talks to the image service over HTTP, authenticated by
// the shared application code header.
type ImageClient struct {
	baseURL string
	appCode string
	client  *http.Client
}

// NewImageClient creates a client for the image service at baseURL.
func NewImageClient(baseURL, appCode string) *ImageClient {
	return &ImageClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		appCode: appCode,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Destroy asks the image service to delete the named file. The service
// answers with a bare "OK" body on success.
func (c *ImageClient) Destroy(ctx context.Context, filename string) (bool, error) {
	body, err := json.Marshal(map[string]string{"filename": filename})
	if err != nil {
		return false, fmt.Errorf("marshal destroy request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/destroy", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("appcode", c.appCode)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("call image service: %w", err)
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return false, fmt.Errorf("read image service reply: %w", err)
	}
	return resp.StatusCode == http.StatusOK && strings.TrimSpace(string(reply)) == "OK", nil
}

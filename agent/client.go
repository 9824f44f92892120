package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"otto/models"
	"otto/vision"
)

// GenerateRequest is the POST body for the image-generation endpoint.
type GenerateRequest struct {
	Image    string              `json:"image"`
	Prompt   string              `json:"prompt"`
	Products []vision.ProductRef `json:"products"`
	Analysis string              `json:"analysis,omitempty"`
}

// GenerateResponse is the image-generation endpoint's success body.
type GenerateResponse struct {
	ImageURL string `json:"imageUrl"`
	Analysis string `json:"analysis"`
}

// ImageClient talks to the vision and generation HTTP endpoints. The base
// URL is configurable so tests can point it at a fake server.
type ImageClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewImageClient(baseURL string) *ImageClient {
	return &ImageClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 120 * time.Second},
	}
}

// Analyze posts the image to the analysis endpoint.
func (c *ImageClient) Analyze(ctx context.Context, image string) (models.RoomAnalysis, error) {
	var out models.RoomAnalysis
	err := c.post(ctx, "/api/analyze-image", map[string]string{"image": image}, &out)
	return out, err
}

// Generate posts the image, prompt and product list to the generation
// endpoint.
func (c *ImageClient) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	var out GenerateResponse
	err := c.post(ctx, "/api/generate-image", req, &out)
	return out, err
}

func (c *ImageClient) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

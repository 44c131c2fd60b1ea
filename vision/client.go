package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/heet2604/food-recommendation-using-ML/config"
)

// Detection is one labeled object found in an image.
type Detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// DetectionResult is the detector service's response: every label it
// found plus the single item it considers primary.
type DetectionResult struct {
	PrimaryItem string      `json:"primary_item"`
	Items       []Detection `json:"items"`
	Error       string      `json:"error"`
}

// Client talks to the external food-image detector. The model is an
// opaque collaborator; like the OCR client, calls sit behind a timeout
// and a concurrency cap.
type Client struct {
	baseURL string
	client  *http.Client
	sem     chan struct{}
}

func NewClient() *Client {
	maxConcurrent, err := strconv.Atoi(config.GetEnv("IMAGE_OPS_CONCURRENCY", "4"))
	if err != nil || maxConcurrent < 1 {
		maxConcurrent = 4
	}
	return &Client{
		baseURL: config.GetEnv("DETECTOR_SERVICE_URL", "http://localhost:5001"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		sem: make(chan struct{}, maxConcurrent),
	}
}

// Detect sends an image to the detector and returns the labels found.
func (c *Client) Detect(ctx context.Context, filePath, originalFilename string) (*DetectionResult, error) {
	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return nil, fmt.Errorf("detection request rejected: %w", ctx.Err())
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", originalFilename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/detect-food", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detection request failed: %w", err)
	}
	defer resp.Body.Close()

	var result DetectionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse detection response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || result.Error != "" {
		if result.Error != "" {
			return nil, fmt.Errorf("detector service error: %s", result.Error)
		}
		return nil, fmt.Errorf("detector service returned status %d", resp.StatusCode)
	}

	if result.PrimaryItem == "" {
		return nil, fmt.Errorf("detector found no food in the image")
	}

	return &result, nil
}

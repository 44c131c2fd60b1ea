package ocr

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

// Client talks to the external OCR service. The engine itself is an
// opaque collaborator: an image goes in, recognized text comes out.
// Requests are bounded by a timeout and a concurrency cap so slow OCR
// calls cannot starve the fast recommendation path.
type Client struct {
	baseURL string
	client  *http.Client
	sem     chan struct{}
}

type textResponse struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

func NewClient() *Client {
	maxConcurrent, err := strconv.Atoi(config.GetEnv("IMAGE_OPS_CONCURRENCY", "4"))
	if err != nil || maxConcurrent < 1 {
		maxConcurrent = 4
	}
	return &Client{
		baseURL: config.GetEnv("OCR_SERVICE_URL", "http://localhost:5001"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		sem: make(chan struct{}, maxConcurrent),
	}
}

// Extract sends an image file to the OCR service and returns the
// recognized text.
func (c *Client) Extract(ctx context.Context, filePath, originalFilename string) (string, error) {
	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return "", fmt.Errorf("ocr request rejected: %w", ctx.Err())
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", originalFilename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/ocr", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	var result textResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse ocr response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != "" {
			return "", fmt.Errorf("ocr service error: %s", result.Error)
		}
		return "", fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	return result.Text, nil
}

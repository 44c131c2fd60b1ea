package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/heet2604/food-recommendation-using-ML/config"
)

// FallbackSimplification is returned to clients when the hosted model
// cannot be reached or fails; the upload itself still succeeds.
const FallbackSimplification = "Could not simplify text"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type Choice struct {
	Index   int     `json:"index"`
	Message Message `json:"message"`
}

type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Choices []Choice `json:"choices"`
}

// Nutrition holds per-100g facts as estimated by the model. A nil
// GlycemicIndex means the model did not know it.
type Nutrition struct {
	Calories      float64  `json:"calories"`
	Carbs         float64  `json:"carbs"`
	Protein       float64  `json:"protein"`
	Fat           float64  `json:"fat"`
	Fiber         float64  `json:"fiber"`
	GlycemicIndex *float64 `json:"glycemic_index"`
}

// Client talks to an OpenAI-compatible chat completion endpoint
// (Together AI by default).
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewClient() *Client {
	return &Client{
		apiKey:  config.GetEnv("TOGETHER_API_KEY", ""),
		baseURL: config.GetEnv("LLM_BASE_URL", "https://api.together.xyz/v1"),
		model:   config.GetEnv("LLM_MODEL", "meta-llama/Llama-3.3-70B-Instruct-Turbo"),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) Chat(messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("TOGETHER_API_KEY not configured")
	}

	reqBody := ChatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   1000,
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// SimplifyMedicalText rewrites a recognized medical report in plain
// language. Callers should substitute FallbackSimplification when this
// returns an error.
func (c *Client) SimplifyMedicalText(text string) (string, error) {
	messages := []Message{
		{Role: "user", Content: fmt.Sprintf("Simplify this medical report into easy-to-understand language:\n\n%s", text)},
	}
	return c.Chat(messages)
}

var jsonObjectRe = regexp.MustCompile(`\{[\s\S]*\}`)

// NutritionFacts asks the model for per-100g nutrition facts of a food
// in strict JSON. When the model answers but its JSON cannot be
// parsed, zero values are returned rather than an error, matching the
// behavior of the dataset loader for missing cells.
func (c *Client) NutritionFacts(food string) (*Nutrition, error) {
	messages := []Message{
		{Role: "system", Content: "You are a nutrition expert. Return nutrition facts per 100g in strict JSON format."},
		{Role: "user", Content: fmt.Sprintf(
			`Provide nutrition facts per 100g of %s in this JSON format: {"calories":0,"carbs":0,"protein":0,"fat":0,"fiber":0,"glycemic_index":null}`, food)},
	}

	content, err := c.Chat(messages)
	if err != nil {
		return nil, err
	}

	match := jsonObjectRe.FindString(content)
	if match == "" {
		return &Nutrition{}, nil
	}

	var facts Nutrition
	if err := json.Unmarshal([]byte(match), &facts); err != nil {
		return &Nutrition{}, nil
	}
	return &facts, nil
}

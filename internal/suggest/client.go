package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

var ErrAPIKeyMissing = errors.New("openrouter api key is not configured")

// Client talks to the OpenRouter chat completions endpoint. One attempt per
// call, no retries; every failure mode ends in the fallback tables.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	referer    string
	httpClient *http.Client
}

type ClientConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Referer string
	Timeout time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.Model == "" {
		cfg.Model = "meta-llama/llama-3.2-3b-instruct:free"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		referer:    cfg.Referer,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Generate returns 5-7 habit suggestions for the given answers. It never
// fails: any upstream error is swallowed and the deterministic fallback set is
// returned instead, with Result.Source reporting which branch produced the
// batch.
func (client *Client) Generate(ctx context.Context, answers Answers) Result {
	habits, err := client.requestSuggestions(ctx, answers)
	if err != nil {
		log.Printf("habit generation fell back to static set: %v", err)
		return Result{
			Habits: FallbackHabits(answers.roleOrDefault(), answers.focusAreaOrDefault()),
			Source: SourceFallback,
		}
	}
	return Result{Habits: habits, Source: SourceGenerated}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

func (client *Client) requestSuggestions(ctx context.Context, answers Answers) ([]Habit, error) {
	if client.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	payload := chatRequest{
		Model:       client.model,
		Messages:    []chatMessage{{Role: "user", Content: buildPrompt(answers)}},
		Temperature: 0.7,
		MaxTokens:   1000,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+"/chat/completions", bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+client.apiKey)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("HTTP-Referer", client.referer)
	request.Header.Set("X-Title", "Noesis Habit Tracker")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("call openrouter: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read openrouter response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openrouter returned status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	content := strings.TrimSpace(gjson.GetBytes(body, "choices.0.message.content").String())
	if content == "" {
		return nil, errors.New("openrouter response has no message content")
	}

	habits, err := decodeSuggestions(content)
	if err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}

	return normalizeSuggestions(habits, answers.focusAreaOrDefault()), nil
}

// internal/aiagent/client.go
package aiagent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storymint/storymint-backend/internal/config"
)

// ErrNoProvider is returned when no generation API key is configured.
var ErrNoProvider = errors.New("no text generation provider configured")

// Generator produces text from a prompt. jsonMode asks the provider for a
// single JSON object; callers still have to tolerate malformed output.
type Generator interface {
	Generate(ctx context.Context, prompt string, jsonMode bool) (string, error)
}

// Client calls the Hugging Face Inference API first and falls back to the
// OpenAI chat completions API. One attempt per provider, no retries.
type Client struct {
	cfg        config.AIConfig
	httpClient *http.Client
	logger     *logrus.Logger

	hfBaseURL     string
	openAIBaseURL string
}

func NewClient(cfg config.AIConfig, logger *logrus.Logger) *Client {
	if cfg.HuggingFaceAPIKey != "" {
		logger.Info("Hugging Face text generation initialized")
	} else {
		logger.Warn("Hugging Face API key not found, set HUGGINGFACE_API_KEY")
	}
	if cfg.OpenAIAPIKey != "" {
		logger.Info("OpenAI text generation initialized")
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		logger:        logger,
		hfBaseURL:     "https://api-inference.huggingface.co",
		openAIBaseURL: "https://api.openai.com",
	}
}

func (c *Client) Generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	if c.cfg.HuggingFaceAPIKey != "" {
		text, err := c.hfTextGeneration(ctx, prompt)
		if err == nil {
			if jsonMode {
				if obj, ok := extractJSON(text); ok {
					return obj, nil
				}
			}
			return text, nil
		}
		c.logger.WithError(err).Warn("Hugging Face generation failed, trying OpenAI")
	}

	if c.cfg.OpenAIAPIKey != "" {
		return c.openAIChat(ctx, prompt, jsonMode)
	}

	return "", ErrNoProvider
}

type hfGenerationParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	ReturnFullText bool    `json:"return_full_text"`
	Temperature    float64 `json:"temperature"`
}

type hfGenerationRequest struct {
	Inputs     string                 `json:"inputs"`
	Parameters hfGenerationParameters `json:"parameters"`
}

type hfGenerationResponse struct {
	GeneratedText string `json:"generated_text"`
}

func (c *Client) hfTextGeneration(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(hfGenerationRequest{
		Inputs: prompt,
		Parameters: hfGenerationParameters{
			MaxNewTokens:   2000,
			ReturnFullText: false,
			Temperature:    0.5,
		},
	})

	url := c.hfBaseURL + "/models/" + c.cfg.HuggingFaceModel
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.HuggingFaceAPIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("hugging face inference returned status %d: %s", resp.StatusCode, string(b))
	}

	var results []hfGenerationResponse
	if err := json.Unmarshal(b, &results); err != nil {
		return "", fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(results) == 0 {
		return "", errors.New("empty inference response")
	}

	return results[0].GeneratedText, nil
}

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIChatRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIChatMessage   `json:"messages"`
	Temperature    float64               `json:"temperature"`
	MaxTokens      int                   `json:"max_tokens"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIChatResponse struct {
	Choices []struct {
		Index        int               `json:"index"`
		Message      openAIChatMessage `json:"message"`
		FinishReason string            `json:"finish_reason"`
	} `json:"choices"`
}

func (c *Client) openAIChat(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	req := openAIChatRequest{
		Model: c.cfg.OpenAIModel,
		Messages: []openAIChatMessage{
			{
				Role:    "system",
				Content: "You are an expert IP licensing analyst. Provide detailed, accurate, and fair analysis. Always return valid JSON when requested.",
			},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.5,
		MaxTokens:   2000,
	}
	if jsonMode {
		req.ResponseFormat = &openAIResponseFormat{Type: "json_object"}
	}

	body, _ := json.Marshal(req)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.openAIBaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.OpenAIAPIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai chat returned status %d: %s", resp.StatusCode, string(b))
	}

	var chatResp openAIChatResponse
	if err := json.Unmarshal(b, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", errors.New("empty chat response")
	}

	return chatResp.Choices[0].Message.Content, nil
}

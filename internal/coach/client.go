// Package coach wraps the generative-text API behind the AI coach tab.
package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	apierrors "github.com/rodrigo/fitdeck/internal/errors"
)

// Client is the interface the TUI and CLI depend on. It issues exactly
// one completion request per call; callers own retry policy (there is
// none) and presentation of failures.
type Client interface {
	// Generate sends the user's text and returns the model's reply.
	// The returned text may be empty on a degraded response.
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
	Close() error
}

// GeminiClient is the production Client backed by the Gemini API
type GeminiClient struct {
	client      *genai.Client
	model       *genai.GenerativeModel
	modelName   string
	temperature float32

	mu     sync.Mutex
	closed bool
}

var _ Client = (*GeminiClient)(nil)

// Option configures a GeminiClient
type Option func(*GeminiClient)

// WithModel overrides the completion model id
func WithModel(name string) Option {
	return func(c *GeminiClient) {
		if name != "" {
			c.modelName = name
		}
	}
}

// WithTemperature overrides the sampling temperature
func WithTemperature(t float32) Option {
	return func(c *GeminiClient) {
		c.temperature = t
	}
}

// NewClient creates a GeminiClient authenticated with the given API key.
// The persona system instruction and sampling temperature are fixed at
// construction; there is no interface for changing them afterwards.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	c := &GeminiClient{
		client:      client,
		modelName:   DefaultModel,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(c)
	}

	model := client.GenerativeModel(c.modelName)
	model.SetTemperature(c.temperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemInstruction)},
	}
	c.model = model

	return c, nil
}

// Generate implements Client
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", apierrors.ErrClientClosed
	}
	c.mu.Unlock()

	if strings.TrimSpace(prompt) == "" {
		return "", apierrors.ErrBlankPrompt
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", c.classify(err)
	}

	return extractText(resp), nil
}

// ModelName implements Client
func (c *GeminiClient) ModelName() string {
	return c.modelName
}

// Close implements Client
func (c *GeminiClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// classify maps transport errors to the structured error types
func (c *GeminiClient) classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == 401 || gerr.Code == 403 {
			return apierrors.NewAuthError(gerr.Message)
		}
		return apierrors.NewAPIError(gerr.Code, c.modelName, gerr.Message)
	}
	return apierrors.NewNetworkError("completion request failed", err)
}

// extractText concatenates the text parts of every candidate
func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return text.String()
}

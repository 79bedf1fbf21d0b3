package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicSummarizer implements the NarrativeGenerator port with a
// single Messages API call per trip. Failures bubble up as errors; the
// estimation pipeline substitutes its fixed placeholder text.
type AnthropicSummarizer struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func NewAnthropicSummarizer(apiKey string) (*AnthropicSummarizer, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is empty")
	}

	return &AnthropicSummarizer{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     "claude-sonnet-4-20250514",
		maxTokens: 512,
	}, nil
}

func (a *AnthropicSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages call: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return strings.TrimSpace(block.Text), nil
		}
	}

	return "", errors.New("anthropic response contained no text")
}

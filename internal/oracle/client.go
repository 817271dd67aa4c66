package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/Alias1177/BetPredictor/models"
)

// Client wraps the OpenAI API client
type Client struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    zerolog.Logger
}

// NewClient creates a new OpenAI client
func NewClient(apiKey, model string, maxTokens int) *Client {
	return &Client{
		client:    openai.NewClient(apiKey),
		model:     model,
		maxTokens: maxTokens,
		logger:    log.With().Str("component", "oracle_client").Logger(),
	}
}

// GenerateCompletion sends a prompt to OpenAI and returns the completion.
// All textual segments of the response are concatenated into one string;
// the text is not interpreted here. One attempt only, failures surface
// immediately.
func (c *Client) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug().Int("prompt_len", len(prompt)).Msg("Sending prompt to OpenAI")

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:     c.model,
			MaxTokens: c.maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)

	if err != nil {
		c.logger.Error().Err(err).Msg("OpenAI API error")
		return "", &models.UpstreamError{Service: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn().Msg("OpenAI returned empty choices")
		return "", &models.UpstreamError{Service: "openai", Err: fmt.Errorf("empty choices in response")}
	}

	var sb strings.Builder
	for _, choice := range resp.Choices {
		sb.WriteString(choice.Message.Content)
	}
	return sb.String(), nil
}

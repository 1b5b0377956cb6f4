// Package openai adapts the official OpenAI SDK to the chat.Completer
// interface. It converts chat messages to SDK params and extracts the
// generated text from the first choice.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/liorae/liora/internal/chat"
)

// Completer implements chat.Completer on top of the OpenAI SDK.
type Completer struct {
	client openai.Client
}

// NewCompleter creates an OpenAI-backed completer. The request timeout is
// set on the client; retries are disabled so a failed call falls straight
// to the reply service's fallback.
func NewCompleter(cfg chat.Config, apiKey string) (*Completer, error) {
	if apiKey == "" {
		return nil, errors.New("completion API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}

	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(cfg.Timeout)*time.Second))
	}

	return &Completer{
		client: openai.NewClient(opts...),
	}, nil
}

// Complete sends one completion request and returns the generated text.
func (c *Completer) Complete(ctx context.Context, req *chat.CompletionRequest) (string, error) {
	if req == nil {
		return "", errors.New("request cannot be nil")
	}

	resp, err := c.client.Chat.Completions.New(ctx, toSDKParams(req))
	if err != nil {
		return "", fmt.Errorf("completion API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// toSDKParams converts a chat request to SDK ChatCompletionNewParams.
func toSDKParams(req *chat.CompletionRequest) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, len(req.Messages))
	for i, msg := range req.Messages {
		switch msg.Role {
		case chat.RoleSystem:
			messages[i] = openai.SystemMessage(msg.Content)
		case chat.RoleAssistant:
			messages[i] = openai.AssistantMessage(msg.Content)
		default:
			// Fallback to user message if role is unknown
			messages[i] = openai.UserMessage(msg.Content)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}

	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	return params
}

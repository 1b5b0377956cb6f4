// Package chat implements the assistant reply pipeline: credential
// resolution, the process-wide completion client cache, and the reply
// service with its canned degraded-mode responses.
package chat

import "context"

// Message roles accepted by the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single chat message.
type Message struct {
	Role    string `json:"role"` // user, assistant, system
	Content string `json:"content"`
}

// CompletionRequest represents one call to the completion API.
type CompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Completer is the outbound dependency: one synchronous call to a
// remote completion API that returns generated text or an error.
type Completer interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}

// Config contains the assistant settings.
type Config struct {
	APIKey      string  `env:"CHAT_API_KEY"`
	Model       string  `env:"CHAT_MODEL"       envDefault:"gpt-4o-mini"`
	BaseURL     string  `env:"CHAT_BASE_URL"    envDefault:"https://api.openai.com/v1"`
	Timeout     int     `env:"CHAT_TIMEOUT"     envDefault:"30"`
	Temperature float64 `env:"CHAT_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int     `env:"CHAT_MAX_TOKENS"  envDefault:"600"`
}

package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/liorae/liora/internal/observability"
)

// Canned replies for the degraded paths. Two distinct strings let operators
// tell "never configured" apart from "configured but the call failed" in
// logs, while the visitor sees a friendly line either way.
const (
	offlineReply = "Got it. I don’t have my full AI brain connected yet. " +
		"Share your main channel (IG/TikTok/LinkedIn), audience, and desired outcome, " +
		"and I’ll sketch a quick plan."

	blankedReply = "I blanked for a sec—mind asking that one more time?"

	snagReply = "I hit a snag reaching my brain. " +
		"Want to try again, or tell me the short version and I’ll help?"
)

// ReplyService produces assistant replies. It never fails outward: every
// call returns a non-empty string.
type ReplyService struct {
	clients *ClientCache
	cfg     Config
	debug   bool
}

// NewReplyService creates a reply service on top of the client cache.
func NewReplyService(clients *ClientCache, cfg Config, debug bool) *ReplyService {
	return &ReplyService{
		clients: clients,
		cfg:     cfg,
		debug:   debug,
	}
}

// Reply returns the assistant's answer to a user message, falling back to
// fixed text when the completion API is unconfigured or the call fails.
func (s *ReplyService) Reply(ctx context.Context, userMsg string) string {
	client := s.clients.Get(ctx)
	if client == nil {
		return offlineReply
	}

	req := &CompletionRequest{
		Model:       s.cfg.Model,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
		Messages: []Message{
			{Role: RoleSystem, Content: SystemPrompt()},
			{Role: RoleUser, Content: strings.TrimSpace(userMsg)},
		},
	}

	text, err := client.Complete(ctx, req)
	if err != nil {
		observability.FromContext(ctx).Error("completion call failed", zap.Error(err))
		if s.debug {
			// Operator escape hatch: leaks error detail to the caller.
			// Must never be enabled on a public deployment.
			return fmt.Sprintf("(DEBUG) completion error: %v", err)
		}
		return snagReply
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return blankedReply
	}
	return text
}

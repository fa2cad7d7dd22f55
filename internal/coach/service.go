package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traino-dev/traino/internal/llm"
)

// Config holds reply generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard reply generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.7,
	}
}

// Service is the coaching-service boundary: one request in, one reply
// text out. It performs no retries of its own — transient-failure
// retries live in the provider middleware, and user-visible retry lives
// in the conversation controller.
type Service struct {
	provider llm.Provider
	persona  Persona
	cfg      Config
}

// SendInput carries one outbound coach request.
type SendInput struct {
	Message   string
	SessionID string
}

// NewService creates a coach service over the given provider.
func NewService(provider llm.Provider, persona Persona, cfg Config) *Service {
	return &Service{provider: provider, persona: persona, cfg: cfg}
}

type replyOutput struct {
	Reply string `json:"reply"`
}

// Send performs one coach exchange and returns the reply text. The
// reply may be empty — substituting a fallback is the caller's call,
// not this boundary's.
func (s *Service) Send(ctx context.Context, in SendInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCoachReply)

	req := llm.Request{
		System: systemPrompt(s.persona),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMessage(in.Message, in.SessionID)},
		},
		Schema:      ReplySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("coach request: %w", err)
	}

	var out replyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse coach reply: %w", err)
	}
	return out.Reply, nil
}

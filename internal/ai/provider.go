package ai

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is a stateless single-call chat completion backend.
// Failures surface as errors; the caller decides the recovery policy.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

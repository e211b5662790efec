package domain

import "context"

// GenerateOptions are the sampling parameters for a single completion call.
type GenerateOptions struct {
	Temperature float32
	MaxTokens   int
}

// ModelGateway is the remote completion service: it takes a role-tagged
// message sequence and returns the generated text.
type ModelGateway interface {
	Complete(ctx context.Context, turns []Turn, opts GenerateOptions) (string, error)
}

// HistoryStore persists per-session conversation history.
// Implementations copy on both read and write: callers never observe
// in-place mutation and always write an updated sequence back explicitly.
type HistoryStore interface {
	Get(id SessionID) ([]Turn, bool)
	Put(id SessionID, turns []Turn)
	Delete(id SessionID)
}

package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/agroclima/agroclima-api/internal/domain"
)

// MockCall records one Complete invocation.
type MockCall struct {
	Turns []domain.Turn
	Opts  domain.GenerateOptions
}

// MockGateway is a scripted domain.ModelGateway for local mode and tests.
// Set Reply or Err to fix the outcome; with neither set it echoes the last
// user turn.
type MockGateway struct {
	mu    sync.Mutex
	Reply string
	Err   error
	Calls []MockCall
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) Complete(ctx context.Context, turns []domain.Turn, opts domain.GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	recorded := make([]domain.Turn, len(turns))
	copy(recorded, turns)
	m.Calls = append(m.Calls, MockCall{Turns: recorded, Opts: opts})

	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}

	last := ""
	for _, t := range turns {
		if t.Role == domain.RoleUser {
			last = t.Content
		}
	}
	return fmt.Sprintf("Entendido: %q. ¿Algo más sobre tu cultivo?", last), nil
}

package llm

import (
	"context"
	"sync"
)

// MockClient permite tests sin llamar a un LLM real; guarda los prompts recibidos.
type MockClient struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.Response, m.Err
}

// Prompts devuelve una copia de los prompts recibidos.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

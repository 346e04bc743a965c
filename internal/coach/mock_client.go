package coach

import "context"

// MockClient is a hand-rolled Client implementation for testing
type MockClient struct {
	// Mock return values
	GenerateVal string
	GenerateErr error
	Model       string

	// Call counters/recorders
	GenerateCalled int
	CloseCalled    bool
	LastPrompt     string

	// Optional hook overriding GenerateVal/GenerateErr
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalled++
	m.LastPrompt = prompt
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return m.GenerateVal, m.GenerateErr
}

func (m *MockClient) ModelName() string {
	if m.Model == "" {
		return DefaultModel
	}
	return m.Model
}

func (m *MockClient) Close() error {
	m.CloseCalled = true
	return nil
}

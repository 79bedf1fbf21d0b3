package narrative

import "context"

// Canned NarrativeGenerator for tests. Records the last prompt so
// callers can assert on prompt construction.
type MockGenerator struct {
	Text       string
	Err        error
	LastPrompt string
}

func (m *MockGenerator) Summarize(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

package ports

import "context"

// Contract for turning a formatted trip prompt into free-form
// assessment text via an external text-generation service.
type NarrativeGenerator interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

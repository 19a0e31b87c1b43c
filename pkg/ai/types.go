package ai

import "context"

// Generator describes a text model capable of producing a short reply for a
// single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

package source

import (
	"context"
	"errors"

	"github.com/real-donkey-killers/railbird/internal/model"
)

// Source yields the full event sequence for one summarizer run.
type Source interface {
	// Read consumes the input to completion and returns the decoded events
	// in input order.
	Read(ctx context.Context) ([]model.Event, error)
}

// ErrMalformedInput reports input that decodes neither as a JSON array of
// events nor as JSON lines. Callers classify decode failures with errors.Is.
var ErrMalformedInput = errors.New("malformed input")

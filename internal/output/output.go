package output

import (
	"context"

	"github.com/real-donkey-killers/railbird/internal/model"
)

// Output defines the interface for summary table destinations. WriteHeader is
// called exactly once, before any row.
type Output interface {
	WriteHeader() error
	Write(ctx context.Context, row model.Row) error
	Close() error
}

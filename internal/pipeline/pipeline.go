package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/real-donkey-killers/railbird/internal/engine"
	"github.com/real-donkey-killers/railbird/internal/output"
	"github.com/real-donkey-killers/railbird/internal/source"
)

// Pipeline connects a source, engine, and output into one summarizing pass.
type Pipeline struct {
	source source.Source
	engine *engine.Engine
	output output.Output
}

// New creates a Pipeline from the given components.
func New(src source.Source, eng *engine.Engine, out output.Output) *Pipeline {
	return &Pipeline{
		source: src,
		engine: eng,
		output: out,
	}
}

// Run reads every event from the source, writes the header, then one row per
// event attributable to the team, in input order. The header goes out even
// when nothing matches.
func (p *Pipeline) Run(ctx context.Context) error {
	events, err := p.source.Read(ctx)
	if err != nil {
		return fmt.Errorf("pipeline read: %w", err)
	}

	if err := p.output.WriteHeader(); err != nil {
		return fmt.Errorf("pipeline output: %w", err)
	}

	rows := p.engine.ProcessBatch(events)
	for _, row := range rows {
		if err := p.output.Write(ctx, row); err != nil {
			return fmt.Errorf("pipeline output: %w", err)
		}
	}

	slog.Debug("summary complete",
		"team", p.engine.Team(),
		"events", len(events),
		"rows", len(rows))
	return nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}

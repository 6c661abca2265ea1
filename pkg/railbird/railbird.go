package railbird

import (
	"context"
	"io"

	"github.com/real-donkey-killers/railbird/internal/engine"
	"github.com/real-donkey-killers/railbird/internal/output/tsv"
	"github.com/real-donkey-killers/railbird/internal/pipeline"
	"github.com/real-donkey-killers/railbird/internal/source"
)

// Summarizer filters poker platform game logs down to one team's actions.
type Summarizer struct {
	team string
}

// New creates a Summarizer. Without options it reports on
// "The Real Donkey Killers"; use WithTeam to pick another team.
func New(opts ...Option) *Summarizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Summarizer{team: o.team}
}

// Team returns the team name the summarizer filters on.
func (s *Summarizer) Team() string {
	return s.team
}

// Summarize reads a log payload from r and writes the team's summary table
// to w: a fixed header line, then one row per event attributable to the
// team, in input order. The header is written even when nothing matches.
func (s *Summarizer) Summarize(r io.Reader, w io.Writer) error {
	p := pipeline.New(source.NewReader(r), engine.New(s.team), tsv.New(w))
	if err := p.Run(context.Background()); err != nil {
		p.Close()
		return err
	}
	return p.Close()
}

// Rows reads a log payload from r and returns the table rows without
// rendering them. Useful when the caller wants the fields, not the text.
func (s *Summarizer) Rows(r io.Reader) ([]Row, error) {
	events, err := source.NewReader(r).Read(context.Background())
	if err != nil {
		return nil, err
	}

	eng := engine.New(s.team)
	rows := make([]Row, 0, len(events))
	for _, ev := range events {
		if row, ok := eng.Process(ev); ok {
			rows = append(rows, rowFromInternal(row))
		}
	}
	return rows, nil
}

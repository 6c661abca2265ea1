package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/real-donkey-killers/railbird/internal/model"
)

// Reader decodes platform events from an io.Reader, typically stdin.
// The payload is read to EOF before decoding: it is either one JSON array of
// event records or newline-delimited records, tried in that order.
type Reader struct {
	r io.Reader
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read consumes the reader and decodes the event sequence. Empty input
// yields an empty sequence. A payload that fails both decode paths returns
// an error wrapping ErrMalformedInput; there is no per-line recovery.
func (s *Reader) Read(_ context.Context) ([]model.Event, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("source: read input: %w", err)
	}
	return decode(data)
}

func decode(data []byte) ([]model.Event, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var events []model.Event
	if err := json.Unmarshal(data, &events); err == nil {
		return events, nil
	}

	// Not a single array; treat each non-blank line as one record. Line
	// numbers in diagnostics count from the raw input, blank lines included,
	// so they match what the caller sees in the file.
	events = nil
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var ev model.Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

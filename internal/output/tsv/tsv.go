package tsv

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/real-donkey-killers/railbird/internal/model"
)

// Header is the fixed column line emitted before any row.
const Header = "round\tstreet\taction\tamount\tpot\tbuyin\tmessage"

// Output writes the summary table as tab-separated text.
type Output struct {
	w *bufio.Writer
}

// New creates a TSV output writing to w. Nothing reaches w until the buffer
// fills or Close flushes it.
func New(w io.Writer) *Output {
	return &Output{w: bufio.NewWriter(w)}
}

// WriteHeader emits the column header line.
func (o *Output) WriteHeader() error {
	if _, err := o.w.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("tsv output: header: %w", err)
	}
	return nil
}

// Write emits one row, fields joined by tabs.
func (o *Output) Write(_ context.Context, row model.Row) error {
	fields := []string{row.Round, row.Street, row.Action, row.Amount, row.Pot, row.BuyIn, row.Message}
	if _, err := o.w.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
		return fmt.Errorf("tsv output: row: %w", err)
	}
	return nil
}

// Close flushes buffered lines to the underlying writer.
func (o *Output) Close() error {
	if err := o.w.Flush(); err != nil {
		return fmt.Errorf("tsv output: flush: %w", err)
	}
	return nil
}

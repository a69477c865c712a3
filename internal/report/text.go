package report

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/solar-cycle/internal/domain/tick"
)

// TextSink prints one "Hour: h, Angle: a°" line per reading.
type TextSink struct {
	w io.Writer
}

// NewText returns a text sink writing to w. Close closes w if it can be closed.
func NewText(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

// Write prints reading with the angle rounded to two decimals.
func (s *TextSink) Write(_ context.Context, reading tick.Reading) error {
	if _, err := fmt.Fprintf(s.w, "Hour: %d, Angle: %.2f°\n", reading.Hour.Int(), reading.Angle); err != nil {
		return fmt.Errorf("write text reading: %w", err)
	}

	return nil
}

// Close releases the underlying writer.
func (s *TextSink) Close() error {
	return closeWriter(s.w)
}

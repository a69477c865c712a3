package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/oshokin/solar-cycle/internal/domain/tick"
)

// JSONSink writes one JSON object per line.
type JSONSink struct {
	w     io.Writer
	enc   *json.Encoder
	runID string
}

// NewJSON returns a JSON-lines sink writing to w.
func NewJSON(w io.Writer, runID string) *JSONSink {
	return &JSONSink{
		w:     w,
		enc:   json.NewEncoder(w),
		runID: runID,
	}
}

// Write encodes reading as a single line.
func (s *JSONSink) Write(_ context.Context, reading tick.Reading) error {
	if err := s.enc.Encode(record{RunID: s.runID, Reading: reading}); err != nil {
		return fmt.Errorf("encode json reading: %w", err)
	}

	return nil
}

// Close releases the underlying writer.
func (s *JSONSink) Close() error {
	return closeWriter(s.w)
}

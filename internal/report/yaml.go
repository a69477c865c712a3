package report

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/solar-cycle/internal/domain/tick"
)

// YAMLSink writes each reading as its own YAML document.
type YAMLSink struct {
	w     io.Writer
	enc   *yaml.Encoder
	runID string
}

// NewYAML returns a YAML stream sink writing to w.
func NewYAML(w io.Writer, runID string) *YAMLSink {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	return &YAMLSink{
		w:     w,
		enc:   enc,
		runID: runID,
	}
}

// Write appends a document for reading.
func (s *YAMLSink) Write(_ context.Context, reading tick.Reading) error {
	if err := s.enc.Encode(record{RunID: s.runID, Reading: reading}); err != nil {
		return fmt.Errorf("encode yaml reading: %w", err)
	}

	return nil
}

// Close flushes the encoder and releases the underlying writer.
func (s *YAMLSink) Close() error {
	return errors.Join(s.enc.Close(), closeWriter(s.w))
}

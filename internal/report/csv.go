package report

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/oshokin/solar-cycle/internal/domain/tick"
)

// csvRow is the column layout of the CSV report.
type csvRow struct {
	RunID    string  `csv:"run_id"`
	Tick     int     `csv:"tick"`
	Hour     int     `csv:"hour"`
	Angle    float64 `csv:"angle"`
	Daylight bool    `csv:"daylight"`
}

// CSVSink collects rows and writes them with a header on Close.
type CSVSink struct {
	w     io.Writer
	runID string
	rows  []*csvRow
}

// NewCSV returns a CSV sink writing to w.
func NewCSV(w io.Writer, runID string) *CSVSink {
	return &CSVSink{
		w:     w,
		runID: runID,
	}
}

// Write buffers reading as a row.
func (s *CSVSink) Write(_ context.Context, reading tick.Reading) error {
	s.rows = append(s.rows, &csvRow{
		RunID:    s.runID,
		Tick:     reading.Tick,
		Hour:     reading.Hour.Int(),
		Angle:    reading.Angle,
		Daylight: reading.Daylight,
	})

	return nil
}

// Close writes the buffered rows and releases the underlying writer.
func (s *CSVSink) Close() error {
	var err error
	if len(s.rows) > 0 {
		if err = gocsv.Marshal(s.rows, s.w); err != nil {
			err = fmt.Errorf("marshal csv report: %w", err)
		}
	}

	return errors.Join(err, closeWriter(s.w))
}

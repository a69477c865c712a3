package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/solar-cycle/internal/config"
	"github.com/oshokin/solar-cycle/internal/domain/tick"
)

// Sink receives readings one tick at a time.
type Sink interface {
	Write(ctx context.Context, reading tick.Reading) error
	Close() error
}

// Format names a sink implementation.
type Format string

const (
	// FormatText writes one human-readable line per reading.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
	// FormatYAML writes a YAML document per reading.
	FormatYAML Format = "yaml"
	// FormatCSV writes a header and one row per reading when closed.
	FormatCSV Format = "csv"
	// FormatSQLite appends rows to the readings table of a database file.
	FormatSQLite Format = "sqlite"
)

var (
	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("unknown report format")
	// errOutputRequired is returned when a file-only format has no path.
	errOutputRequired = errors.New("output path is required")
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatSQLite}
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))

	for _, f := range Formats() {
		if f == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Open creates the sink for format. Stream formats write to path, or to
// stdout when path is empty (os.Stdout if stdout is nil). runID tags every
// record of structured formats.
//
//nolint:ireturn // Callers pick the implementation by name.
func Open(format Format, path, runID string, stdout io.Writer) (Sink, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	if format == FormatSQLite {
		if path == "" {
			return nil, fmt.Errorf("%s: %w", format, errOutputRequired)
		}

		sink, err := OpenSQLite(path, runID)
		if err != nil {
			return nil, err
		}

		return sink, nil
	}

	w, err := openWriter(path, stdout)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatText:
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w, runID), nil
	case FormatYAML:
		return NewYAML(w, runID), nil
	case FormatCSV:
		return NewCSV(w, runID), nil
	default:
		_ = w.Close()

		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// openWriter opens path for writing, truncating it, or wraps stdout.
func openWriter(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		if stdout == nil {
			stdout = os.Stdout
		}

		return nopCloser{stdout}, nil
	}

	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.DefaultFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open report output: %w", err)
	}

	return f, nil
}

// nopCloser keeps stdout open when a sink closes.
type nopCloser struct {
	io.Writer
}

// Close does nothing.
func (nopCloser) Close() error { return nil }

// closeWriter closes w when it is a Closer.
func closeWriter(w io.Writer) error {
	if c, ok := w.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// record is the structured form of a reading.
type record struct {
	RunID string `json:"run_id,omitempty" yaml:"run_id,omitempty"`

	tick.Reading `yaml:",inline"`
}

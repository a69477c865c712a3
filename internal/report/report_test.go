package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/solar-cycle/internal/domain/cycle"
	"github.com/oshokin/solar-cycle/internal/domain/tick"
)

// fullDay returns the readings of one cycle starting at hour 0.
func fullDay() []tick.Reading {
	readings := make([]tick.Reading, 0, cycle.HoursPerDay)
	for h := range cycle.HoursPerDay {
		readings = append(readings, tick.NewReading(h, cycle.Hour(h)))
	}

	return readings
}

// writeAll sends readings to sink and closes it.
func writeAll(t *testing.T, sink Sink, readings []tick.Reading) {
	t.Helper()

	for _, r := range readings {
		require.NoError(t, sink.Write(context.Background(), r))
	}

	require.NoError(t, sink.Close())
}

// TestParseFormat accepts known names in any case and rejects the rest.
func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

// TestTextSink_FullDay compares the text report of one day with the golden file.
func TestTextSink_FullDay(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	writeAll(t, NewText(&buf), fullDay())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "full_day_text", buf.Bytes())
}

// TestJSONSink writes one object per line with the run ID attached.
func TestJSONSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	writeAll(t, NewJSON(&buf, "run-1"), fullDay()[:7])

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)

	var last struct {
		RunID    string  `json:"run_id"`
		Tick     int     `json:"tick"`
		Hour     int     `json:"hour"`
		Angle    float64 `json:"angle"`
		Daylight bool    `json:"daylight"`
	}

	require.NoError(t, json.Unmarshal([]byte(lines[6]), &last))
	require.Equal(t, "run-1", last.RunID)
	require.Equal(t, 6, last.Tick)
	require.Equal(t, 6, last.Hour)
	require.InDelta(t, 90.0, last.Angle, 1e-6)
	require.True(t, last.Daylight)
}

// TestYAMLSink writes a document stream that decodes back document by document.
func TestYAMLSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	writeAll(t, NewYAML(&buf, "run-2"), fullDay()[17:19])

	dec := yaml.NewDecoder(&buf)

	var hours []int

	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			break
		}

		require.Equal(t, "run-2", doc["run_id"])
		hours = append(hours, doc["hour"].(int))
	}

	require.Equal(t, []int{17, 18}, hours)
}

// TestCSVSink writes a header row followed by one row per reading.
func TestCSVSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	writeAll(t, NewCSV(&buf, "run-3"), fullDay())

	var rows []*csvRow
	require.NoError(t, gocsv.UnmarshalBytes(buf.Bytes(), &rows))
	require.Len(t, rows, cycle.HoursPerDay)
	require.Equal(t, "run-3", rows[0].RunID)
	require.Equal(t, 18, rows[18].Hour)
	require.InDelta(t, -90.0, rows[18].Angle, 1e-6)
	require.True(t, strings.HasPrefix(buf.String(), "run_id,tick,hour,angle,daylight"))
}

// TestSQLiteSink stores two runs in one file and reads each back separately.
func TestSQLiteSink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "readings.db")

	first, err := OpenSQLite(path, "run-a")
	require.NoError(t, err)
	writeAll(t, first, fullDay())

	second, err := OpenSQLite(path, "run-b")
	require.NoError(t, err)
	require.NoError(t, second.Write(context.Background(), tick.NewReading(0, cycle.Hour(12))))

	stored, err := second.Run(context.Background(), "run-a")
	require.NoError(t, err)
	require.Equal(t, fullDay(), stored)

	stored, err = second.Run(context.Background(), "run-b")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, cycle.Hour(12), stored[0].Hour)

	require.NoError(t, second.Close())
}

// TestOpen covers file output, stdout defaults and argument errors.
func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "day.txt")

	sink, err := Open(FormatText, path, "", nil)
	require.NoError(t, err)
	writeAll(t, sink, fullDay()[:2])

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Hour: 0, Angle: 0.00°\nHour: 1, Angle: 23.29°\n", string(contents))

	_, err = Open(FormatSQLite, "", "run", nil)
	require.ErrorIs(t, err, errOutputRequired)

	_, err = Open(Format("xml"), filepath.Join(dir, "x"), "", nil)
	require.ErrorIs(t, err, ErrUnknownFormat)

	var buf bytes.Buffer

	sink, err = Open(FormatJSON, "", "run", &buf)
	require.NoError(t, err)
	writeAll(t, sink, fullDay()[6:7])
	require.Contains(t, buf.String(), `"run_id":"run"`)
	require.Contains(t, buf.String(), `"hour":6`)
}

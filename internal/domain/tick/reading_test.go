package tick

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/solar-cycle/internal/domain/cycle"
)

// TestNewReading verifies that a reading carries the angle and daylight flag of its hour.
func TestNewReading(t *testing.T) {
	t.Parallel()

	r := NewReading(3, cycle.Hour(6))
	require.Equal(t, 3, r.Tick)
	require.Equal(t, cycle.Hour(6), r.Hour)
	require.InDelta(t, 90.0, r.Angle, 1e-6)
	require.True(t, r.Daylight)

	r = NewReading(0, cycle.Hour(18))
	require.InDelta(t, -90.0, r.Angle, 1e-6)
	require.False(t, r.Daylight)
}

// TestSummarize_FullDay checks peak, trough, mean and daylight count over one cycle.
func TestSummarize_FullDay(t *testing.T) {
	t.Parallel()

	readings := make([]Reading, 0, cycle.HoursPerDay)
	for h := range cycle.HoursPerDay {
		readings = append(readings, NewReading(h, cycle.Hour(h)))
	}

	s := Summarize(readings)
	require.Equal(t, cycle.HoursPerDay, s.Ticks)
	require.Equal(t, cycle.Hour(6), s.PeakHour)
	require.InDelta(t, 90.0, s.PeakAngle, 1e-6)
	require.Equal(t, cycle.Hour(18), s.TroughHour)
	require.InDelta(t, -90.0, s.TroughAngle, 1e-6)
	require.InDelta(t, 0.0, s.MeanAngle, 1e-9)
	require.Equal(t, 11, s.DaylightTicks)
}

// TestSummarize_Empty ensures an empty run does not panic.
func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	require.Equal(t, Summary{}, Summarize(nil))
}

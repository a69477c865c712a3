package tick

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/oshokin/solar-cycle/internal/domain/cycle"
	"github.com/oshokin/solar-cycle/internal/domain/solar"
)

// Reading is the hour-state observed at one tick together with its elevation.
type Reading struct {
	// Tick is the zero-based index of the tick within a run.
	Tick int `json:"tick" yaml:"tick"`
	// Hour is the hour-state read before advancing.
	Hour cycle.Hour `json:"hour" yaml:"hour"`
	// Angle is the solar elevation for Hour, in degrees.
	Angle float64 `json:"angle" yaml:"angle"`
	// Daylight is true when Angle is above the horizon.
	Daylight bool `json:"daylight" yaml:"daylight"`
}

// NewReading builds the reading for hour at the given tick index.
func NewReading(index int, hour cycle.Hour) Reading {
	return Reading{
		Tick:     index,
		Hour:     hour,
		Angle:    solar.AngleForHour(hour.Int()),
		Daylight: solar.IsDaylight(hour.Int()),
	}
}

// Summary condenses a run of readings.
type Summary struct {
	// Ticks is the number of readings summarized.
	Ticks int
	// PeakHour is the first hour with the highest elevation.
	PeakHour cycle.Hour
	// PeakAngle is the highest elevation seen.
	PeakAngle float64
	// TroughHour is the first hour with the lowest elevation.
	TroughHour cycle.Hour
	// TroughAngle is the lowest elevation seen.
	TroughAngle float64
	// MeanAngle is the arithmetic mean of all elevations.
	MeanAngle float64
	// DaylightTicks counts readings with the sun above the horizon.
	DaylightTicks int
}

// Summarize computes the Summary of readings. An empty run yields a zero Summary.
func Summarize(readings []Reading) Summary {
	if len(readings) == 0 {
		return Summary{}
	}

	angles := make([]float64, len(readings))
	daylight := 0

	for i, r := range readings {
		angles[i] = r.Angle

		if r.Daylight {
			daylight++
		}
	}

	peak := floats.MaxIdx(angles)
	trough := floats.MinIdx(angles)

	return Summary{
		Ticks:         len(readings),
		PeakHour:      readings[peak].Hour,
		PeakAngle:     angles[peak],
		TroughHour:    readings[trough].Hour,
		TroughAngle:   angles[trough],
		MeanAngle:     stat.Mean(angles, nil),
		DaylightTicks: daylight,
	}
}

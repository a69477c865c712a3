package solar

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/oshokin/solar-cycle/internal/domain/cycle"
)

// MaxElevation is the amplitude of the elevation curve, in degrees.
const MaxElevation = 90.0

// Phase returns the position of hour within the daily period as an angle.
// The hour is normalized first, so any integer is accepted.
func Phase(hour int) unit.Angle {
	n := cycle.Normalize(hour)

	// Keep the n/24 division first: it makes hour 12 land exactly on π.
	return unit.Angle(2 * math.Pi * (float64(n) / cycle.HoursPerDay))
}

// AngleForHour returns the elevation in degrees, within [-90, 90], for any hour.
// The peak sits at hour 6, a quarter period after hour 0.
func AngleForHour(hour int) float64 {
	return MaxElevation * math.Sin(Phase(hour).Rad())
}

// IsDaylight reports whether the sun is above the horizon at hour.
func IsDaylight(hour int) bool {
	return AngleForHour(hour) > daylightThreshold
}

// daylightThreshold absorbs the sin(π) residue so hour 12 is not counted as daylight.
const daylightThreshold = 1e-9

package cycle

import (
	"errors"
	"fmt"
	"strconv"
)

// HoursPerDay is the number of hour-states in one cycle.
const HoursPerDay = 24

// ErrInvalidState is returned when an hour outside [0, HoursPerDay) is used
// to construct or force-set a cycle.
var ErrInvalidState = errors.New("invalid hour state")

// Hour is an hour-state in [0, 23].
type Hour int

// Normalize reduces any integer hour to its representative in [0, 23].
// Negative values wrap backwards, so -1 is 23.
func Normalize(h int) Hour {
	n := h % HoursPerDay
	if n < 0 {
		n += HoursPerDay
	}

	return Hour(n)
}

// Validate reports whether h is a legal hour-state.
func Validate(h int) error {
	if h < 0 || h >= HoursPerDay {
		return fmt.Errorf("hour %d is outside [0, %d]: %w", h, HoursPerDay-1, ErrInvalidState)
	}

	return nil
}

// Next returns the successor state.
func (h Hour) Next() Hour {
	return Normalize(int(h) + 1)
}

// Int returns the hour as a plain int.
func (h Hour) Int() int {
	return int(h)
}

// String returns the state label, e.g. "Hour_7".
func (h Hour) String() string {
	return "Hour_" + strconv.Itoa(int(h))
}

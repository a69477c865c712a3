package cycle

// HourCycle is a cyclic state machine over the 24 hour-states.
//
// An HourCycle is owned by whoever constructed it and is not safe for
// concurrent mutation. Callers sharing one must serialize Current, Advance
// and Set themselves.
type HourCycle struct {
	// current is the active hour-state.
	current Hour
}

// Option configures a new HourCycle.
type Option func(*settings)

// settings collects construction options before validation.
type settings struct {
	initialHour int
}

// WithInitialHour starts the cycle at h instead of 0.
func WithInitialHour(h int) Option {
	return func(s *settings) {
		s.initialHour = h
	}
}

// New creates a cycle at Hour_0, or at the hour given by WithInitialHour.
// An out-of-range initial hour fails with ErrInvalidState.
func New(opts ...Option) (*HourCycle, error) {
	var s settings

	for _, opt := range opts {
		opt(&s)
	}

	if err := Validate(s.initialHour); err != nil {
		return nil, err
	}

	return &HourCycle{
		current: Hour(s.initialHour),
	}, nil
}

// Current returns the current hour-state.
func (c *HourCycle) Current() Hour {
	return c.current
}

// Advance moves to the next hour, wrapping 23 to 0, and returns the new state.
func (c *HourCycle) Advance() Hour {
	c.current = c.current.Next()

	return c.current
}

// Set forces the cycle to hour h. The state is left unchanged when h is out
// of range.
func (c *HourCycle) Set(h int) error {
	if err := Validate(h); err != nil {
		return err
	}

	c.current = Hour(h)

	return nil
}

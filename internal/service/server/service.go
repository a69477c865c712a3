package server

import (
	"context"
	"sync"

	"github.com/oshokin/solar-cycle/internal/domain/actor"
	domain "github.com/oshokin/solar-cycle/internal/domain/cycle"
	"github.com/oshokin/solar-cycle/internal/domain/solar"
	"github.com/oshokin/solar-cycle/internal/domain/tick"
	"github.com/oshokin/solar-cycle/internal/logger"
)

// service owns the shared cycle and serializes access to it.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// cycle is the single hour-state machine served to clients.
	cycle *domain.HourCycle
	// transitions counts advances and force-sets since start.
	transitions int
	// mu guards cycle and transitions.
	mu sync.Mutex
}

// newService creates a service whose cycle starts at initialHour.
func newService(initialHour int) (*service, error) {
	c, err := domain.New(domain.WithInitialHour(initialHour))
	if err != nil {
		return nil, err
	}

	return &service{
		cycle: c,
	}, nil
}

// CurrentHour returns the current hour-state.
func (s *service) CurrentHour(ctx context.Context) domain.Hour {
	s.mu.Lock()
	defer s.mu.Unlock()

	hour := s.cycle.Current()

	logger.DebugKV(ctx, "Current hour requested", "hour", hour.Int())

	return hour
}

// AdvanceHour moves the cycle forward one hour and returns the new state.
func (s *service) AdvanceHour(ctx context.Context, caller *actor.Actor) domain.Hour {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.cycle.Current()
	next := s.cycle.Advance()
	s.transitions++

	logger.InfoKV(
		ctx,
		"Hour advanced",
		"from", previous.Int(),
		"to", next.Int(),
		"angle", solar.AngleForHour(next.Int()),
		"actor", caller.String(),
	)

	return next
}

// SetHour forces the cycle to hour. Out-of-range values leave it unchanged
// and return an error wrapping cycle.ErrInvalidState.
func (s *service) SetHour(ctx context.Context, caller *actor.Actor, hour int) (domain.Hour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cycle.Set(hour); err != nil {
		logger.WarnKV(ctx, "Rejected hour", "hour", hour, "actor", caller.String(), "error", err)

		return s.cycle.Current(), err
	}

	s.transitions++

	logger.InfoKV(ctx, "Hour set", "hour", hour, "actor", caller.String())

	return s.cycle.Current(), nil
}

// Reading returns the current hour with its elevation. Tick is the number
// of transitions applied since the server started.
func (s *service) Reading(ctx context.Context) tick.Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	reading := tick.NewReading(s.transitions, s.cycle.Current())

	logger.DebugKV(ctx, "Reading requested", "hour", reading.Hour.Int(), "angle", reading.Angle)

	return reading
}

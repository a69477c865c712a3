package cycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/solar-cycle/internal/domain/actor"
	domain "github.com/oshokin/solar-cycle/internal/domain/cycle"
	"github.com/oshokin/solar-cycle/internal/domain/tick"
	pb "github.com/oshokin/solar-cycle/internal/pb/v1"
)

var errTestStorage = errors.New("test failure")

// fakeService implements the Service interface over a plain HourCycle.
type fakeService struct {
	// cycle is the state the fake exposes.
	cycle *domain.HourCycle
	// lastActor records the caller of the last state change.
	lastActor *actor.Actor
	// setErr, when set, is returned by SetHour instead of touching the cycle.
	setErr error
}

// newFakeService returns a fake starting at hour 0.
func newFakeService(t *testing.T) *fakeService {
	t.Helper()

	c, err := domain.New()
	require.NoError(t, err)

	return &fakeService{cycle: c}
}

// CurrentHour returns the fake's current hour.
func (f *fakeService) CurrentHour(context.Context) domain.Hour { return f.cycle.Current() }

// AdvanceHour advances the fake's cycle and records the caller.
func (f *fakeService) AdvanceHour(_ context.Context, caller *actor.Actor) domain.Hour {
	f.lastActor = caller

	return f.cycle.Advance()
}

// SetHour forces the fake's cycle unless setErr is configured.
func (f *fakeService) SetHour(_ context.Context, caller *actor.Actor, hour int) (domain.Hour, error) {
	if f.setErr != nil {
		return 0, f.setErr
	}

	f.lastActor = caller

	if err := f.cycle.Set(hour); err != nil {
		return 0, err
	}

	return f.cycle.Current(), nil
}

// Reading returns the reading for the fake's current hour.
func (f *fakeService) Reading(context.Context) tick.Reading {
	return tick.NewReading(0, f.cycle.Current())
}

// TestServer_AdvanceAndCurrent advances through midnight and reads the hour back.
func TestServer_AdvanceAndCurrent(t *testing.T) {
	t.Parallel()

	svc := newFakeService(t)
	require.NoError(t, svc.cycle.Set(23))

	s := NewServer(svc)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		pb.MetadataActorHostname, "station-1",
		pb.MetadataActorUsername, "o.shokin",
	))

	next, err := s.AdvanceHour(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.Equal(t, int32(0), next.GetValue())
	require.Equal(t, &actor.Actor{Hostname: "station-1", Username: "o.shokin"}, svc.lastActor)

	current, err := s.GetCurrentHour(context.Background(), new(emptypb.Empty))
	require.NoError(t, err)
	require.Equal(t, int32(0), current.GetValue())
}

// TestServer_SetHour_Validation maps InvalidState and other failures to status codes.
func TestServer_SetHour_Validation(t *testing.T) {
	t.Parallel()

	svc := newFakeService(t)
	s := NewServer(svc)

	_, err := s.SetHour(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.SetHour(context.Background(), wrapperspb.Int32(24))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.SetHour(context.Background(), wrapperspb.Int32(-1))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	got, err := s.SetHour(context.Background(), wrapperspb.Int32(9))
	require.NoError(t, err)
	require.Equal(t, int32(9), got.GetValue())
	require.Nil(t, svc.lastActor)

	svc.setErr = errTestStorage

	_, err = s.SetHour(context.Background(), wrapperspb.Int32(3))
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestServer_GetAngle answers for arbitrary hours without touching the cycle.
func TestServer_GetAngle(t *testing.T) {
	t.Parallel()

	svc := newFakeService(t)
	s := NewServer(svc)

	cases := map[int64]float64{
		6:   90,
		18:  -90,
		-18: 90,
		30:  90,
	}

	for hour, want := range cases {
		got, err := s.GetAngle(context.Background(), wrapperspb.Int64(hour))
		require.NoError(t, err)
		require.InDelta(t, want, got.GetValue(), 1e-6, "hour %d", hour)
	}

	_, err := s.GetAngle(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	require.Equal(t, domain.Hour(0), svc.cycle.Current())
}

// TestServer_GetReading encodes hour, angle and daylight into a Struct.
func TestServer_GetReading(t *testing.T) {
	t.Parallel()

	svc := newFakeService(t)
	require.NoError(t, svc.cycle.Set(6))

	s := NewServer(svc)

	got, err := s.GetReading(context.Background(), new(emptypb.Empty))
	require.NoError(t, err)

	fields := got.GetFields()
	require.InDelta(t, 6.0, fields[pb.ReadingFieldHour].GetNumberValue(), 0)
	require.InDelta(t, 90.0, fields[pb.ReadingFieldAngle].GetNumberValue(), 1e-6)
	require.True(t, fields[pb.ReadingFieldDaylight].GetBoolValue())
}

// TestClampToInt keeps the hour's residue modulo 24.
func TestClampToInt(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5, clampToInt(5))
	require.Equal(t, -7, clampToInt(-7))
}

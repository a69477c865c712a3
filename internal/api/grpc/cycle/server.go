package cycle

import (
	"context"
	"errors"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/solar-cycle/internal/domain/actor"
	domain "github.com/oshokin/solar-cycle/internal/domain/cycle"
	"github.com/oshokin/solar-cycle/internal/domain/solar"
	"github.com/oshokin/solar-cycle/internal/domain/tick"
	pb "github.com/oshokin/solar-cycle/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	CurrentHour(ctx context.Context) domain.Hour
	AdvanceHour(ctx context.Context, caller *actor.Actor) domain.Hour
	SetHour(ctx context.Context, caller *actor.Actor, hour int) (domain.Hour, error)
	Reading(ctx context.Context) tick.Reading
}

// Server implements the CycleService gRPC API.
type Server struct {
	pb.UnimplementedCycleServiceServer

	// service owns the shared cycle.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// GetCurrentHour returns the current hour-state.
func (s *Server) GetCurrentHour(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int32Value, error) {
	return toProtoHour(s.service.CurrentHour(ctx)), nil
}

// AdvanceHour moves the shared cycle forward one hour.
func (s *Server) AdvanceHour(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int32Value, error) {
	return toProtoHour(s.service.AdvanceHour(ctx, actorFromContext(ctx))), nil
}

// SetHour forces the shared cycle to the requested hour.
func (s *Server) SetHour(ctx context.Context, req *wrapperspb.Int32Value) (*wrapperspb.Int32Value, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "hour is required")
	}

	hour, err := s.service.SetHour(ctx, actorFromContext(ctx), int(req.GetValue()))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		return nil, status.Error(codes.Internal, "unable to set hour")
	}

	return toProtoHour(hour), nil
}

// GetAngle returns the elevation for an arbitrary hour.
func (s *Server) GetAngle(_ context.Context, req *wrapperspb.Int64Value) (*wrapperspb.DoubleValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "hour is required")
	}

	return wrapperspb.Double(solar.AngleForHour(clampToInt(req.GetValue()))), nil
}

// GetReading returns the current hour with its elevation.
func (s *Server) GetReading(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	reading := s.service.Reading(ctx)

	result, err := structpb.NewStruct(map[string]any{
		pb.ReadingFieldTick:     reading.Tick,
		pb.ReadingFieldHour:     reading.Hour.Int(),
		pb.ReadingFieldAngle:    reading.Angle,
		pb.ReadingFieldDaylight: reading.Daylight,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to encode reading")
	}

	return result, nil
}

// toProtoHour converts an hour-state to its wire form.
func toProtoHour(h domain.Hour) *wrapperspb.Int32Value {
	return wrapperspb.Int32(int32(h.Int())) //nolint:gosec // Hour is always in [0, 23].
}

// clampToInt narrows a wire hour to int while keeping it in the same
// residue class modulo 24, so the angle is unchanged on 32-bit platforms.
func clampToInt(v int64) int {
	if v >= math.MinInt && v <= math.MaxInt {
		return int(v)
	}

	return int(v % domain.HoursPerDay)
}

// actorFromContext reads the caller identity from incoming metadata.
func actorFromContext(ctx context.Context) *actor.Actor {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	caller := &actor.Actor{
		Hostname: first(md.Get(pb.MetadataActorHostname)),
		Username: first(md.Get(pb.MetadataActorUsername)),
	}

	if caller.Hostname == "" && caller.Username == "" {
		return nil
	}

	return caller
}

// first returns the first value or an empty string.
func first(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

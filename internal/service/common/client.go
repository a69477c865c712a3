//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/solar-cycle/internal/config"
	"github.com/oshokin/solar-cycle/internal/domain/actor"
	"github.com/oshokin/solar-cycle/internal/domain/cycle"
	"github.com/oshokin/solar-cycle/internal/domain/tick"
	pb "github.com/oshokin/solar-cycle/internal/pb/v1"
)

// Client wraps the CycleService gRPC client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the cycle server.
	conn *grpc.ClientConn
	// api is the CycleService client stub.
	api pb.CycleServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// caller is sent as metadata on every call when set.
	caller *actor.Actor
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithActor identifies the caller to the server.
func WithActor(caller *actor.Actor) Option {
	return func(c *Client) {
		c.caller = caller.Clone()
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errMalformedReading is returned when a reading lacks one of its fields.
	errMalformedReading = errors.New("malformed reading")
)

// Dial creates a client for the cycle server at address.
// The connection uses insecure transport credentials.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial cycle server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewCycleServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// CurrentHour returns the server's current hour-state.
func (c *Client) CurrentHour(ctx context.Context) (cycle.Hour, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetCurrentHour(callCtx, new(emptypb.Empty))
	if err != nil {
		return 0, fmt.Errorf("get current hour: %w", err)
	}

	return cycle.Hour(resp.GetValue()), nil
}

// AdvanceHour advances the server's cycle and returns the new hour.
func (c *Client) AdvanceHour(ctx context.Context) (cycle.Hour, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.AdvanceHour(callCtx, new(emptypb.Empty))
	if err != nil {
		return 0, fmt.Errorf("advance hour: %w", err)
	}

	return cycle.Hour(resp.GetValue()), nil
}

// SetHour forces the server's cycle to hour. The hour is checked locally
// first, so out-of-range values fail with cycle.ErrInvalidState without a call.
func (c *Client) SetHour(ctx context.Context, hour int) (cycle.Hour, error) {
	if err := cycle.Validate(hour); err != nil {
		return 0, err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.SetHour(callCtx, wrapperspb.Int32(int32(hour))) //nolint:gosec // Validated above.
	if err != nil {
		return 0, fmt.Errorf("set hour: %w", err)
	}

	return cycle.Hour(resp.GetValue()), nil
}

// Angle asks the server for the elevation at an arbitrary hour.
func (c *Client) Angle(ctx context.Context, hour int) (float64, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetAngle(callCtx, wrapperspb.Int64(int64(hour)))
	if err != nil {
		return 0, fmt.Errorf("get angle: %w", err)
	}

	return resp.GetValue(), nil
}

// Reading returns the server's current hour with its elevation.
func (c *Client) Reading(ctx context.Context) (tick.Reading, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetReading(callCtx, new(emptypb.Empty))
	if err != nil {
		return tick.Reading{}, fmt.Errorf("get reading: %w", err)
	}

	fields := resp.GetFields()

	hour, okHour := fields[pb.ReadingFieldHour]
	angle, okAngle := fields[pb.ReadingFieldAngle]
	daylight, okDaylight := fields[pb.ReadingFieldDaylight]

	if !okHour || !okAngle || !okDaylight {
		return tick.Reading{}, errMalformedReading
	}

	return tick.Reading{
		Tick:     int(fields[pb.ReadingFieldTick].GetNumberValue()),
		Hour:     cycle.Normalize(int(hour.GetNumberValue())),
		Angle:    angle.GetNumberValue(),
		Daylight: daylight.GetBoolValue(),
	}, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline. The caller
// identity is attached as outgoing metadata.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.caller != nil {
		ctx = metadata.AppendToOutgoingContext(
			ctx,
			pb.MetadataActorHostname, c.caller.Hostname,
			pb.MetadataActorUsername, c.caller.Username,
		)
	}

	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

package cyclev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "solarcycle.v1.CycleService"

// Full method names.
const (
	CycleServiceGetCurrentHourFullMethodName = "/" + ServiceName + "/GetCurrentHour"
	CycleServiceAdvanceHourFullMethodName    = "/" + ServiceName + "/AdvanceHour"
	CycleServiceSetHourFullMethodName        = "/" + ServiceName + "/SetHour"
	CycleServiceGetAngleFullMethodName       = "/" + ServiceName + "/GetAngle"
	CycleServiceGetReadingFullMethodName     = "/" + ServiceName + "/GetReading"
)

// Reading field names carried in the GetReading Struct.
const (
	ReadingFieldTick     = "tick"
	ReadingFieldHour     = "hour"
	ReadingFieldAngle    = "angle"
	ReadingFieldDaylight = "daylight"
)

// CycleServiceServer is the server API for CycleService.
type CycleServiceServer interface {
	GetCurrentHour(ctx context.Context, req *emptypb.Empty) (*wrapperspb.Int32Value, error)
	AdvanceHour(ctx context.Context, req *emptypb.Empty) (*wrapperspb.Int32Value, error)
	SetHour(ctx context.Context, req *wrapperspb.Int32Value) (*wrapperspb.Int32Value, error)
	GetAngle(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.DoubleValue, error)
	GetReading(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedCycleServiceServer returns codes.Unimplemented for every method.
// Embed it by value to stay forward compatible.
type UnimplementedCycleServiceServer struct{}

// GetCurrentHour is not implemented.
func (UnimplementedCycleServiceServer) GetCurrentHour(context.Context, *emptypb.Empty) (*wrapperspb.Int32Value, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentHour not implemented")
}

// AdvanceHour is not implemented.
func (UnimplementedCycleServiceServer) AdvanceHour(context.Context, *emptypb.Empty) (*wrapperspb.Int32Value, error) {
	return nil, status.Error(codes.Unimplemented, "method AdvanceHour not implemented")
}

// SetHour is not implemented.
func (UnimplementedCycleServiceServer) SetHour(context.Context, *wrapperspb.Int32Value) (*wrapperspb.Int32Value, error) {
	return nil, status.Error(codes.Unimplemented, "method SetHour not implemented")
}

// GetAngle is not implemented.
func (UnimplementedCycleServiceServer) GetAngle(context.Context, *wrapperspb.Int64Value) (*wrapperspb.DoubleValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAngle not implemented")
}

// GetReading is not implemented.
func (UnimplementedCycleServiceServer) GetReading(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReading not implemented")
}

// RegisterCycleServiceServer registers srv on s.
func RegisterCycleServiceServer(s grpc.ServiceRegistrar, srv CycleServiceServer) {
	s.RegisterService(&CycleServiceDesc, srv)
}

// unaryHandler adapts a typed method to the grpc.MethodDesc handler shape.
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(srv CycleServiceServer, ctx context.Context, req *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(CycleServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}

		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CycleServiceServer), ctx, req.(*Req))
		}

		return interceptor(ctx, in, info, handler)
	}
}

// CycleServiceDesc is the grpc.ServiceDesc for CycleService.
//
//nolint:gochecknoglobals // Service descriptors are package-level by convention.
var CycleServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CycleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCurrentHour",
			Handler: unaryHandler(CycleServiceGetCurrentHourFullMethodName,
				func(srv CycleServiceServer, ctx context.Context, req *emptypb.Empty) (*wrapperspb.Int32Value, error) {
					return srv.GetCurrentHour(ctx, req)
				}),
		},
		{
			MethodName: "AdvanceHour",
			Handler: unaryHandler(CycleServiceAdvanceHourFullMethodName,
				func(srv CycleServiceServer, ctx context.Context, req *emptypb.Empty) (*wrapperspb.Int32Value, error) {
					return srv.AdvanceHour(ctx, req)
				}),
		},
		{
			MethodName: "SetHour",
			Handler: unaryHandler(CycleServiceSetHourFullMethodName,
				func(srv CycleServiceServer, ctx context.Context, req *wrapperspb.Int32Value) (*wrapperspb.Int32Value, error) {
					return srv.SetHour(ctx, req)
				}),
		},
		{
			MethodName: "GetAngle",
			Handler: unaryHandler(CycleServiceGetAngleFullMethodName,
				func(srv CycleServiceServer, ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.DoubleValue, error) {
					return srv.GetAngle(ctx, req)
				}),
		},
		{
			MethodName: "GetReading",
			Handler: unaryHandler(CycleServiceGetReadingFullMethodName,
				func(srv CycleServiceServer, ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error) {
					return srv.GetReading(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "solarcycle/v1/cycle.proto",
}

// CycleServiceClient is the client API for CycleService.
type CycleServiceClient interface {
	GetCurrentHour(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error)
	AdvanceHour(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error)
	SetHour(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error)
	GetAngle(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.DoubleValue, error)
	GetReading(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

// cycleServiceClient invokes CycleService methods over a connection.
type cycleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCycleServiceClient returns a client bound to cc.
//
//nolint:ireturn // Mirrors generated client constructors.
func NewCycleServiceClient(cc grpc.ClientConnInterface) CycleServiceClient {
	return &cycleServiceClient{cc: cc}
}

// invoke performs a unary call into a freshly allocated response.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// GetCurrentHour calls CycleService.GetCurrentHour.
func (c *cycleServiceClient) GetCurrentHour(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error) {
	return invoke[wrapperspb.Int32Value](ctx, c.cc, CycleServiceGetCurrentHourFullMethodName, in, opts)
}

// AdvanceHour calls CycleService.AdvanceHour.
func (c *cycleServiceClient) AdvanceHour(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error) {
	return invoke[wrapperspb.Int32Value](ctx, c.cc, CycleServiceAdvanceHourFullMethodName, in, opts)
}

// SetHour calls CycleService.SetHour.
func (c *cycleServiceClient) SetHour(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*wrapperspb.Int32Value, error) {
	return invoke[wrapperspb.Int32Value](ctx, c.cc, CycleServiceSetHourFullMethodName, in, opts)
}

// GetAngle calls CycleService.GetAngle.
func (c *cycleServiceClient) GetAngle(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.DoubleValue, error) {
	return invoke[wrapperspb.DoubleValue](ctx, c.cc, CycleServiceGetAngleFullMethodName, in, opts)
}

// GetReading calls CycleService.GetReading.
func (c *cycleServiceClient) GetReading(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, CycleServiceGetReadingFullMethodName, in, opts)
}

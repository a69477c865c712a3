// Package cyclev1 declares the solarcycle.v1.CycleService gRPC service.
//
// The service only uses protobuf well-known types (Empty, Int32Value,
// Int64Value, DoubleValue, Struct), so this package holds the service
// descriptor, handlers and client stub but no message definitions.
// See api/proto/solarcycle/v1/cycle.proto.
package cyclev1

// Package cycle implements the gRPC transport for the cycle service.
//
// It adapts domain types to protobuf well-known types and maps domain errors
// to status codes. Angle queries are answered directly from the solar model
// and never touch the shared cycle.
package cycle

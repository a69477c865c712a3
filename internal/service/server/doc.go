// Package server runs the gRPC cycle server.
//
// One HourCycle is shared by all clients. The service serializes reads,
// advances and force-sets under a single mutex, since the cycle itself is
// not safe for concurrent mutation.
package server

// Package common holds helpers shared by the solar-cycle commands.
//
// It provides a gRPC client wrapper with per-call timeouts and detection of
// the local system actor, which the client sends as call metadata.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

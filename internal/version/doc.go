// Package version exposes build metadata injected with -ldflags and a cobra
// subcommand that prints it.
package version

// Package logger wraps zap with a process-wide sugared logger and helpers to
// carry scoped loggers through a context.Context.
//
// Output goes to stderr so that command output on stdout stays clean for
// pipes (simulate writes its report there).
package logger

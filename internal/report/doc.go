// Package report writes simulation readings to a sink: plain text, JSON
// lines, a YAML document stream, CSV or an SQLite table.
package report

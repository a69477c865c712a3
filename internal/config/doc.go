// Package config defines the YAML settings shared by the solar-cycle binaries
// and provides helpers to load, validate and save them.
package config

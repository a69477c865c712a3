// Package cli holds pieces shared by the solar-cycle binaries: exit codes and log level setup.
package cli

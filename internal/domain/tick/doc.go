// Package tick defines what a driver emits for each simulated hour and how a
// run of readings is summarized.
package tick

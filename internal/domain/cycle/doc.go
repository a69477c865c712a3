// Package cycle contains the hour-of-day state machine.
//
// HourCycle holds one of 24 hour-states and moves through them with a single
// transition, Advance, that wraps from 23 back to 0. There is no terminal
// state. The package also owns hour normalization and range validation.
package cycle

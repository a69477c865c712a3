// Package simulator drives an HourCycle tick by tick: read the hour, compute
// its elevation, report the pair, advance. Ticks may be paced by an interval.
package simulator

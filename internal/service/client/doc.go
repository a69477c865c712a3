// Package client runs one remote operation against the cycle server and
// prints the result: read the hour, advance it, force-set it, query the angle
// for any hour, or read the current hour with its angle.
package client

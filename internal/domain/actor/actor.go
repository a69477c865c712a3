// Package actor identifies who changed the shared cycle.
package actor

// Actor identifies who performed an action in the system.
type Actor struct {
	// Hostname is the machine name the request came from.
	Hostname string
	// Username is the system user who sent the request.
	Username string
}

// Clone returns a copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// String renders the actor as username@hostname, or "anonymous".
func (a *Actor) String() string {
	if a == nil || (a.Username == "" && a.Hostname == "") {
		return "anonymous"
	}

	return a.Username + "@" + a.Hostname
}

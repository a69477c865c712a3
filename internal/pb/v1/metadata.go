package cyclev1

// Outgoing metadata keys identifying the caller of state-changing methods.
const (
	MetadataActorHostname = "x-actor-hostname"
	MetadataActorUsername = "x-actor-username"
)

package docker

import (
	"context"

	"github.com/docker/docker/api/types/events"
)

// Engine is what the inventory pipeline needs from the container engine:
// the list of known container identifiers and the raw inspect payload of
// a single container.
type Engine interface {
	// ContainerIDs returns identifiers of known containers, in engine
	// order. With all set, stopped containers are included.
	ContainerIDs(ctx context.Context, all bool) ([]string, error)
	// InspectRaw performs one detail query for the given container and
	// returns the engine's JSON reply verbatim.
	InspectRaw(ctx context.Context, id string) ([]byte, error)
}

// EventSource streams engine lifecycle events
type EventSource interface {
	Events(ctx context.Context) (<-chan events.Message, <-chan error)
}

package docker

import (
	"context"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/events"
	"github.com/docker/docker/client"

	"github.com/dockwatch/inventory-agent/internal/logger"
)

const pkgName = "DockerEngine. "

type Client struct {
	cli *client.Client
}

// New connects to the local container engine (honours DOCKER_HOST and
// friends). When the engine is unreachable the agent still has to serve
// the management platform, so fallback to a null client instead of failing.
func New() Engine {
	cli, err := client.NewClientWithOpts(client.FromEnv)
	if err != nil {
		logger.Error().Println(pkgName, "engine client:", err)
		logger.Warning().Println(pkgName, "fallback to null engine client")
		return &NullClient{}
	}

	cli.NegotiateAPIVersion(context.Background())
	logger.Info().Println(pkgName, "negotiated API version", cli.ClientVersion())

	return &Client{cli: cli}
}

func (c *Client) ContainerIDs(ctx context.Context, all bool) ([]string, error) {
	containers, err := c.cli.ContainerList(ctx, types.ContainerListOptions{All: all})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(containers))
	for _, ctr := range containers {
		ids = append(ids, ctr.ID)
	}

	return ids, nil
}

// InspectRaw keeps the body of GET /containers/<id>/json untouched.
// The typed reply is discarded on purpose: the mapping layer decides
// field by field what is present and what is not.
func (c *Client) InspectRaw(ctx context.Context, id string) ([]byte, error) {
	_, raw, err := c.cli.ContainerInspectWithRaw(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) Events(ctx context.Context) (<-chan events.Message, <-chan error) {
	return c.cli.Events(ctx, types.EventsOptions{})
}

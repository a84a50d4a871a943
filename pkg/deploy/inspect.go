package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	docker_client "github.com/docker/docker/client"
)

// ErrNotDeployed indicates no container with the configured name exists.
var ErrNotDeployed = errors.New("container is not deployed")

// Status is a point-in-time snapshot of the deployed container.
type Status struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Running   bool   `json:"running"`
	State     string `json:"state"`
	Health    string `json:"health,omitempty"`
	StartedAt string `json:"started_at,omitempty"`
}

// Report combines the container snapshot with the resolved address and the
// healthcheck probe result. It is what the status command renders.
type Report struct {
	*Status
	Address  string `json:"address"`
	Deployed bool   `json:"deployed"`
	Healthy  bool   `json:"endpoint_healthy"`
}

// Inspector reports container state through the runtime's API rather than by
// scraping CLI output.
type Inspector struct {
	cli *docker_client.Client
}

// NewInspector connects to the local runtime daemon using the standard
// environment configuration.
func NewInspector() (*Inspector, error) {
	cli, err := docker_client.NewClientWithOpts(
		docker_client.FromEnv,
		docker_client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to container runtime: %w", err)
	}
	return &Inspector{cli: cli}, nil
}

func (i *Inspector) Close() error {
	return i.cli.Close()
}

// Inspect looks up the named container. Returns ErrNotDeployed when the
// runtime has no container by that name.
func (i *Inspector) Inspect(ctx context.Context, name string) (*Status, error) {
	info, err := i.cli.ContainerInspect(ctx, name)
	if err != nil {
		if docker_client.IsErrNotFound(err) {
			return nil, ErrNotDeployed
		}
		return nil, fmt.Errorf("inspecting container %s: %w", name, err)
	}

	status := &Status{
		Name: strings.TrimPrefix(info.Name, "/"),
	}
	if info.Config != nil {
		status.Image = info.Config.Image
	}
	if info.State != nil {
		status.Running = info.State.Running
		status.State = info.State.Status
		status.StartedAt = info.State.StartedAt
		if info.State.Health != nil {
			status.Health = info.State.Health.Status
		}
	}
	return status, nil
}

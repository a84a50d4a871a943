// Package testutil holds helpers shared by tests that talk to a real
// container runtime.
package testutil

import (
	"testing"

	docker_client "github.com/docker/docker/client"
	"github.com/stretchr/testify/require"
)

// IsDockerAvailable returns true if the docker daemon is reachable, useful
// for skipping integration tests when docker isn't running.
func IsDockerAvailable(t testing.TB) bool {
	t.Helper()

	c, err := docker_client.NewClientWithOpts(docker_client.FromEnv, docker_client.WithAPIVersionNegotiation())
	require.NoError(t, err)
	defer c.Close()

	if _, err := c.Info(t.Context()); err != nil {
		t.Logf("docker not available for test %s: %v", t.Name(), err)
		return false
	}
	return true
}

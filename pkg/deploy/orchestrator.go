package deploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"

	"github.com/docserve/dsctl/pkg/config"
)

var log = logging.Logger("deploy")

// defaultRuntime is the container runtime CLI driven by the orchestrator.
const defaultRuntime = "docker"

// Orchestrator replaces the document server container: it idempotently tears
// down any previous instance by name, then starts a fresh one from the
// configured image.
type Orchestrator struct {
	container config.Container
	runtime   string
	executor  CommandExecutor
}

// NewOrchestrator creates an orchestrator driving the local docker CLI.
func NewOrchestrator(container config.Container) *Orchestrator {
	return NewOrchestratorWithExecutor(&realCommandExecutor{}, container)
}

// NewOrchestratorWithExecutor creates an orchestrator with a custom executor.
func NewOrchestratorWithExecutor(executor CommandExecutor, container config.Container) *Orchestrator {
	return &Orchestrator{
		container: container,
		runtime:   defaultRuntime,
		executor:  executor,
	}
}

// StopContainer stops any running instance. A missing or already-stopped
// container is expected on first deploy, so failures are logged and dropped.
func (o *Orchestrator) StopContainer(ctx context.Context) {
	if _, err := o.executor.Output(ctx, o.runtime, "stop", o.container.Name); err != nil {
		log.Debugf("stopping container %s: %v", o.container.Name, err)
	}
}

// RemoveContainer removes any stopped instance. Same best-effort policy as
// StopContainer.
func (o *Orchestrator) RemoveContainer(ctx context.Context) {
	if _, err := o.executor.Output(ctx, o.runtime, "rm", o.container.Name); err != nil {
		log.Debugf("removing container %s: %v", o.container.Name, err)
	}
}

// RunArgs builds the runtime arguments for the create-and-start step:
// detached, fixed name, host port published to container port 80, and the
// nine environment variables from BuildEnv.
func (o *Orchestrator) RunArgs(cfg config.DocumentServer) []string {
	args := []string{
		"run", "-d",
		"--name", o.container.Name,
		"-p", fmt.Sprintf("%d:80", o.container.HostPort),
	}
	for _, kv := range BuildEnv(cfg) {
		args = append(args, "-e", kv)
	}
	return append(args, o.container.Image)
}

// RunContainer creates and starts a new container. Unlike the teardown
// steps, a failure here is surfaced: deploying nothing is not success.
func (o *Orchestrator) RunContainer(ctx context.Context, cfg config.DocumentServer) error {
	out, err := o.executor.Output(ctx, o.runtime, o.RunArgs(cfg)...)
	if err != nil {
		return fmt.Errorf("starting container %s from %s: %w", o.container.Name, o.container.Image, err)
	}
	id := strings.TrimSpace(string(out))
	if len(id) > 12 {
		id = id[:12]
	}
	log.Infof("started container %s (%s)", o.container.Name, id)
	return nil
}

// Deploy runs the full stop, remove, run sequence.
func (o *Orchestrator) Deploy(ctx context.Context, cfg config.DocumentServer) error {
	o.StopContainer(ctx)
	o.RemoveContainer(ctx)
	return o.RunContainer(ctx, cfg)
}

// Down stops and removes the container. "No such container" is fine; any
// other failure is collected and returned.
func (o *Orchestrator) Down(ctx context.Context) error {
	var errs error
	if _, err := o.executor.Output(ctx, o.runtime, "stop", o.container.Name); err != nil && !isBenign(err) {
		errs = multierror.Append(errs, fmt.Errorf("stopping container %s: %w", o.container.Name, err))
	}
	if _, err := o.executor.Output(ctx, o.runtime, "rm", o.container.Name); err != nil && !isBenign(err) {
		errs = multierror.Append(errs, fmt.Errorf("removing container %s: %w", o.container.Name, err))
	}
	return errs
}

func isBenign(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such container") ||
		strings.Contains(msg, "is not running")
}

package minikube

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"os/exec"
	"strconv"
	"strings"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

const (
	defaultBinary   = "minikube"
	defaultMemoryMB = 4096
	defaultCPUs     = 2

	// driverNone runs Kubernetes on the host, so the node address comes from the API.
	driverNone = "none"

	hostRunning = "Running"
)

// Options configure the minikube CLI invocations.
type Options struct {
	Binary   string
	Profile  string
	Driver   string
	MemoryMB int
	CPUs     int
}

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Runtime controls a local minikube cluster through its CLI.
type Runtime struct {
	logger *slog.Logger
	opts   Options
	nodes  reconciler.NodeAddressProvider
	run    commandRunner
}

// New creates a new minikube runtime. nodes is consulted for the node address
// when the driver is "none"; it may be nil.
func New(
	logger *slog.Logger,
	opts Options,
	nodes reconciler.NodeAddressProvider,
) *Runtime {
	if opts.Binary == "" {
		opts.Binary = defaultBinary
	}

	if opts.MemoryMB == 0 {
		opts.MemoryMB = defaultMemoryMB
	}

	if opts.CPUs == 0 {
		opts.CPUs = defaultCPUs
	}

	return &Runtime{
		logger: logger,
		opts:   opts,
		nodes:  nodes,
		run:    execCommand,
	}
}

var _ reconciler.ClusterRuntime = (*Runtime)(nil)

// EnsureRunningCommand starts the cluster unless its host is already running.
func (r *Runtime) EnsureRunningCommand(ctx context.Context) error {
	logger := r.logger.With("minikube", "EnsureRunningCommand", "profile", r.opts.Profile)

	out, err := r.minikube(ctx, "status", "--format", "{{.Host}}")
	if err == nil && strings.TrimSpace(string(out)) == hostRunning {
		logger.DebugContext(ctx, "cluster already running")

		return nil
	}

	// minikube status exits non-zero for stopped or missing clusters.
	logger.InfoContext(ctx, "cluster not running, starting",
		"memory", r.opts.MemoryMB,
		"cpus", r.opts.CPUs,
	)

	args := []string{
		"start",
		"--memory=" + strconv.Itoa(r.opts.MemoryMB),
		"--cpus=" + strconv.Itoa(r.opts.CPUs),
	}

	if r.opts.Driver != "" {
		args = append(args, "--driver="+r.opts.Driver)
	}

	if _, err := r.minikube(ctx, args...); err != nil {
		return fmt.Errorf("start cluster: %w", err)
	}

	logger.InfoContext(ctx, "cluster started")

	return nil
}

// NodeAddressQuery returns the address of the cluster node.
func (r *Runtime) NodeAddressQuery(ctx context.Context) (string, error) {
	if r.opts.Driver == driverNone && r.nodes != nil {
		return r.nodes.NodeAddressQuery(ctx)
	}

	out, err := r.minikube(ctx, "ip")
	if err != nil {
		return "", fmt.Errorf("get node ip: %w", err)
	}

	address := strings.TrimSpace(string(out))
	if net.ParseIP(address) == nil {
		return "", fmt.Errorf("get node ip: %w: %q", errInvalidAddress, address)
	}

	return address, nil
}

// LoadImageCommand copies a local image into the cluster image store.
func (r *Runtime) LoadImageCommand(ctx context.Context, image string) error {
	if _, err := r.minikube(ctx, "image", "load", image); err != nil {
		return fmt.Errorf("load image %s: %w", image, err)
	}

	r.logger.InfoContext(ctx, "image loaded into cluster", "image", image)

	return nil
}

func (r *Runtime) minikube(ctx context.Context, args ...string) ([]byte, error) {
	if r.opts.Profile != "" {
		args = append(args, "--profile="+r.opts.Profile)
	}

	r.logger.DebugContext(ctx, "running minikube", "args", args)

	return r.run(ctx, r.opts.Binary, args...)
}

func execCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // minikube binary comes from trusted config

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("%s %s: %w: %s",
			name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

package docker

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
)

const defaultDockerfile = "Dockerfile"

// imageBuildAPI is the subset of the Docker Engine client used by Builder.
type imageBuildAPI interface {
	ImageBuild(ctx context.Context, buildContext io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error)
}

// Builder builds workload images through the Docker Engine API.
type Builder struct {
	logger     *slog.Logger
	client     imageBuildAPI
	contextDir string
	dockerfile string
	output     io.Writer
}

// NewBuilder creates a new image builder for the build context in contextDir.
// Build progress is written to output.
func NewBuilder(
	logger *slog.Logger,
	client imageBuildAPI,
	contextDir string,
	dockerfile string,
	output io.Writer,
) *Builder {
	if dockerfile == "" {
		dockerfile = defaultDockerfile
	}

	if output == nil {
		output = io.Discard
	}

	return &Builder{
		logger:     logger,
		client:     client,
		contextDir: contextDir,
		dockerfile: dockerfile,
		output:     output,
	}
}

// BuildImageCommand builds the context directory and tags the result as image.
func (b *Builder) BuildImageCommand(ctx context.Context, image string) error {
	logger := b.logger.With("image", image, "context", b.contextDir)

	buildContext, err := tarDirectory(b.contextDir)
	if err != nil {
		return fmt.Errorf("pack build context: %w", err)
	}

	logger.InfoContext(ctx, "building image", "dockerfile", b.dockerfile, "size", buildContext.Len())

	resp, err := b.client.ImageBuild(ctx, buildContext, build.ImageBuildOptions{
		Tags:        []string{image},
		Dockerfile:  b.dockerfile,
		Remove:      true,
		ForceRemove: true,
	})
	if err != nil {
		return fmt.Errorf("image build: %w", classifyEngineError(err))
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.WarnContext(ctx, "failed to close build response", "reason", closeErr)
		}
	}()

	// The engine reports build failures inside the progress stream.
	if err := jsonmessage.DisplayJSONMessagesStream(resp.Body, b.output, 0, false, nil); err != nil {
		return fmt.Errorf("image build: %w", err)
	}

	logger.InfoContext(ctx, "image built")

	return nil
}

// classifyEngineError marks errors that are not caused by the build itself.
func classifyEngineError(err error) error {
	switch {
	case client.IsErrConnectionFailed(err), errdefs.IsUnavailable(err):
		return fmt.Errorf("%w: %w", errEngineUnavailable, err)
	case errdefs.IsInvalidArgument(err):
		return fmt.Errorf("%w: %w", errInvalidBuildRequest, err)
	default:
		return err
	}
}

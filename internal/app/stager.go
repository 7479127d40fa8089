package app

import (
	"context"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

type imageBuilder interface {
	BuildImageCommand(ctx context.Context, image string) error
}

type imageLoader interface {
	LoadImageCommand(ctx context.Context, image string) error
}

// imageStager builds with one backend and loads with another: Docker builds
// the image, the cluster runtime imports it.
type imageStager struct {
	builder imageBuilder
	loader  imageLoader
}

var _ reconciler.ImageStager = (*imageStager)(nil)

func (s *imageStager) BuildImageCommand(ctx context.Context, image string) error {
	return s.builder.BuildImageCommand(ctx, image)
}

func (s *imageStager) LoadImageCommand(ctx context.Context, image string) error {
	return s.loader.LoadImageCommand(ctx, image)
}

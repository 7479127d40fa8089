package docker

import "errors"

var (
	errNotDirectory        = errors.New("build context is not a directory")
	errEngineUnavailable   = errors.New("docker engine unavailable")
	errInvalidBuildRequest = errors.New("invalid build request")
)

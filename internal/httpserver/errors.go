package httpserver

import "errors"

var (
	// ErrNotReady is returned by Ping before the listener is serving.
	ErrNotReady = errors.New("not ready")

	// ErrProbeFailed is returned by Ping when the server answers with a non-2xx status.
	ErrProbeFailed = errors.New("probe failed")
)

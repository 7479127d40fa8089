package reconciler

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectivity is the only error that aborts a reconciliation cycle.
	ErrConnectivity = errors.New("connectivity")

	ErrInvalidWorkloadSpec  = errors.New("invalid workload spec")
	ErrApply                = errors.New("apply object")
	ErrImageStage           = errors.New("stage image")
	ErrConvergenceTimeout   = errors.New("convergence timeout")
	ErrResolutionUnresolved = errors.New("endpoint unresolved")

	// ErrMetricUnavailable marks a snapshot field without a value.
	// It is always wrapped by either ErrNoData or ErrQueryFailed.
	ErrMetricUnavailable = errors.New("metric unavailable")
	ErrNoData            = fmt.Errorf("%w: no data", ErrMetricUnavailable)
	ErrQueryFailed       = fmt.Errorf("%w: query failed", ErrMetricUnavailable)
)

package cli

import "errors"

var (
	errCycleIncomplete = errors.New("reconciliation incomplete")
	errNotConverged    = errors.New("deployment not converged")
)

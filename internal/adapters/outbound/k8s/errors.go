package k8s

import "errors"

var (
	errNodeAddressNotFound = errors.New("no node with an internal address")
	errMetricsAPIDisabled  = errors.New("metrics api client not configured")
)

// TooManyRequestsError represents a throttled metrics API call.
type TooManyRequestsError struct{}

func (e *TooManyRequestsError) Error() string {
	return "too many requests"
}

func (e *TooManyRequestsError) IsTooManyRequests() {}

var errTooManyRequests = &TooManyRequestsError{}

// NotFoundError represents a missing object. The poller treats it as "not created yet".
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) IsNotFound() {}

var (
	errDeploymentNotFound = &NotFoundError{Resource: "deployment"}
	errPodMetricsNotFound = &NotFoundError{Resource: "pod metrics"}
)

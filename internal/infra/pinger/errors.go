package pinger

import "errors"

var (
	// ErrPingerAlreadyRegistered is returned when a pinger with the same name exists
	ErrPingerAlreadyRegistered = errors.New("pinger already registered")

	errNilPinger = errors.New("pinger cannot be nil")
)

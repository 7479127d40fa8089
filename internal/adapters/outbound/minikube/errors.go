package minikube

import "errors"

var errInvalidAddress = errors.New("invalid node address")

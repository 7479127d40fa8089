package shutdown

import "errors"

// ErrTerminatedBeforeStartup is returned by CheckTermination when a signal is already pending.
var ErrTerminatedBeforeStartup = errors.New("terminated before startup")

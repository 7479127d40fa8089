package hoststats

import "errors"

// ErrStatsUnavailable wraps every host counter read failure.
var ErrStatsUnavailable = errors.New("host stats unavailable")

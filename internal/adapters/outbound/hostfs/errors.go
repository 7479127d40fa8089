package hostfs

import "errors"

var errMemTotalMissing = errors.New("MemTotal missing")

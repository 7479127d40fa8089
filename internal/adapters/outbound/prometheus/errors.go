package prometheus

import "errors"

var errUnsupportedResultType = errors.New("unsupported result type")

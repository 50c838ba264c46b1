package cluster

import "errors"

var (
	errEmptySamples = errors.New("cluster: no samples given")
	errInvalidK     = errors.New("cluster: k must be >= 1")
)

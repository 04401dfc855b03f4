package gridgraph

import "errors"

var (
	// ErrNilHeightMap indicates New was called without a height map.
	ErrNilHeightMap = errors.New("gridgraph: height map is nil")
	// ErrOptionViolation indicates an invalid GraphOptions value.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)

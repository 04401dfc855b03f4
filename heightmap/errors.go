package heightmap

import "errors"

// ErrMalformedInput indicates the text cannot describe a valid height map.
var ErrMalformedInput = errors.New("heightmap: malformed input")

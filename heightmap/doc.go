// Package heightmap parses a textual elevation map into an immutable,
// rectangular grid of elevations and locates its start and end markers.
//
// What:
//
//   - One row per line, each rune in 'a'..'z', plus exactly one 'S'
//     (start) and exactly one 'E' (end).
//   - 'S' is stored at elevation 'a' and 'E' at elevation 'z', so every
//     consumer sees remapped elevations before computing adjacency.
//   - Row width is fixed by the first line; a shorter or longer line is
//     rejected, never truncated or padded.
//
// Coordinates:
//
//	Coordinate{Row, Col} with Row in [0, Rows()) and Col in [0, Cols()).
//	InBounds is the single bounds predicate; Index/CoordinateOf convert
//	to and from row-major IDs (Row*Cols()+Col).
//
// Errors:
//
//   - ErrMalformedInput: empty input, ragged rows, unknown runes,
//     missing or duplicated 'S'/'E'. The wrapped message names the
//     offending row or marker.
//
// Complexity: Parse is O(R×C) time and memory.
package heightmap

package heightmap

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse builds a HeightMap from text with one row per line and returns
// the locations of the 'S' and 'E' markers.
//
// Behavior:
//  1. Split on '\n'; a trailing '\r' on a row is dropped.
//  2. Width is taken from the first row; every other row must match it.
//  3. Each rune is mapped through ElevationOf; 'S'/'E' are recorded and
//     stored as 'a'/'z'.
//  4. Exactly one 'S' and exactly one 'E' must be present.
//
// Every failure wraps ErrMalformedInput.
// Complexity: O(R×C) time and memory.
func Parse(text string) (*HeightMap, Endpoints, error) {
	var ends Endpoints
	if text == "" {
		return nil, ends, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	cols := utf8.RuneCountInString(lines[0])
	if cols == 0 {
		return nil, ends, fmt.Errorf("%w: first row is empty", ErrMalformedInput)
	}

	hm := &HeightMap{
		rows:  len(lines),
		cols:  cols,
		cells: make([]Elevation, 0, len(lines)*cols),
	}
	var starts, finishes int
	for row, line := range lines {
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, ends, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedInput, row, n, cols)
		}
		col := 0
		for _, r := range line {
			e, ok := ElevationOf(r)
			if !ok {
				return nil, ends, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedInput, r, row, col)
			}
			switch r {
			case StartMarker:
				starts++
				ends.Start = Coordinate{Row: row, Col: col}
			case EndMarker:
				finishes++
				ends.End = Coordinate{Row: row, Col: col}
			}
			hm.cells = append(hm.cells, e)
			col++
		}
	}

	if err := checkMarker(StartMarker, starts); err != nil {
		return nil, Endpoints{}, err
	}
	if err := checkMarker(EndMarker, finishes); err != nil {
		return nil, Endpoints{}, err
	}
	return hm, ends, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// fixed fixtures.
func MustParse(text string) (*HeightMap, Endpoints) {
	hm, ends, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return hm, ends
}

func checkMarker(marker rune, count int) error {
	switch {
	case count == 0:
		return fmt.Errorf("%w: missing %q marker", ErrMalformedInput, marker)
	case count > 1:
		return fmt.Errorf("%w: %q marker appears %d times", ErrMalformedInput, marker, count)
	}
	return nil
}

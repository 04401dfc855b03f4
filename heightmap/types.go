package heightmap

import "fmt"

// Marker runes and the elevation range they map onto.
const (
	StartMarker = 'S'
	EndMarker   = 'E'

	lowest  = 'a'
	highest = 'z'
)

// Elevation is a terrain level: 0 for 'a' up to 25 for 'z'.
type Elevation int8

// MinElevation and MaxElevation bound every Elevation stored in a HeightMap.
const (
	MinElevation Elevation = 0
	MaxElevation Elevation = highest - lowest
)

// ElevationOf maps a map rune to its elevation. 'S' counts as 'a' and
// 'E' counts as 'z'. The boolean is false for any other rune.
func ElevationOf(r rune) (Elevation, bool) {
	switch {
	case r == StartMarker:
		return MinElevation, true
	case r == EndMarker:
		return MaxElevation, true
	case r >= lowest && r <= highest:
		return Elevation(r - lowest), true
	default:
		return 0, false
	}
}

// Rune returns the lowercase letter for e.
func (e Elevation) Rune() rune {
	return rune(e) + lowest
}

// Coordinate identifies a grid cell. It is comparable and usable as a map key.
type Coordinate struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Endpoints records where the 'S' and 'E' markers were found.
type Endpoints struct {
	Start, End Coordinate
}

// HeightMap is a rectangular, immutable grid of elevations stored row-major.
type HeightMap struct {
	rows, cols int
	cells      []Elevation
}

// Rows returns the number of rows.
func (hm *HeightMap) Rows() int { return hm.rows }

// Cols returns the number of columns.
func (hm *HeightMap) Cols() int { return hm.cols }

// Len returns the number of cells (Rows*Cols).
func (hm *HeightMap) Len() int { return len(hm.cells) }

// InBounds reports whether c lies within [0,Rows()) × [0,Cols()).
// Complexity: O(1).
func (hm *HeightMap) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < hm.rows && c.Col >= 0 && c.Col < hm.cols
}

// At returns the elevation at c. It panics if c is out of bounds.
func (hm *HeightMap) At(c Coordinate) Elevation {
	if !hm.InBounds(c) {
		panic(fmt.Sprintf("heightmap: coordinate %v out of bounds %dx%d", c, hm.rows, hm.cols))
	}
	return hm.cells[hm.Index(c)]
}

// AtIndex returns the elevation of the cell with row-major index i.
func (hm *HeightMap) AtIndex(i int) Elevation {
	return hm.cells[i]
}

// Index maps c to its row-major index: Row*Cols()+Col.
// Complexity: O(1).
func (hm *HeightMap) Index(c Coordinate) int {
	return c.Row*hm.cols + c.Col
}

// CoordinateOf converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (hm *HeightMap) CoordinateOf(i int) Coordinate {
	return Coordinate{Row: i / hm.cols, Col: i % hm.cols}
}

// String renders the map back as lowercase rows separated by '\n'.
// Markers are not restored: 'S' prints as 'a' and 'E' as 'z'.
func (hm *HeightMap) String() string {
	buf := make([]byte, 0, hm.rows*(hm.cols+1))
	for i, e := range hm.cells {
		if i > 0 && i%hm.cols == 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, byte(e.Rune()))
	}
	return string(buf)
}

package heightmap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
)

const sample = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi"

// TestParse_Sample checks dimensions, endpoints and the S/E remap on the
// canonical 5×8 map.
func TestParse_Sample(t *testing.T) {
	hm, ends, err := heightmap.Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, 5, hm.Rows())
	assert.Equal(t, 8, hm.Cols())
	assert.Equal(t, 40, hm.Len())
	assert.Equal(t, heightmap.Coordinate{Row: 0, Col: 0}, ends.Start)
	assert.Equal(t, heightmap.Coordinate{Row: 2, Col: 5}, ends.End)

	assert.Equal(t, heightmap.MinElevation, hm.At(ends.Start), "S must read as 'a'")
	assert.Equal(t, heightmap.MaxElevation, hm.At(ends.End), "E must read as 'z'")
	assert.Equal(t, 'q', hm.At(heightmap.Coordinate{Row: 0, Col: 3}).Rune())
	assert.Equal(t, 'i', hm.At(heightmap.Coordinate{Row: 4, Col: 7}).Rune())
}

// TestParse_CRLF accepts Windows line endings.
func TestParse_CRLF(t *testing.T) {
	hm, ends, err := heightmap.Parse("Sb\r\ncE")
	require.NoError(t, err)
	assert.Equal(t, 2, hm.Rows())
	assert.Equal(t, 2, hm.Cols())
	assert.Equal(t, heightmap.Coordinate{Row: 1, Col: 1}, ends.End)
}

// TestParse_String round-trips the elevations with markers remapped.
func TestParse_String(t *testing.T) {
	hm := mustParse(t, "Sbc\nxyE")
	assert.Equal(t, "abc\nxyz", hm.String())
}

// TestParse_Malformed verifies that every structural defect is rejected
// with ErrMalformedInput.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"EmptyFirstRow", "\nSE"},
		{"MissingEnd", "Sabc\nabcd"},
		{"MissingStart", "abcE\nabcd"},
		{"DuplicateStart", "SabE\nSbcd"},
		{"DuplicateEnd", "SabE\naEcd"},
		{"ShortRow", "SabE\nabc"},
		{"LongRow", "SabE\nabcde"},
		{"TrailingBlankLine", "SabE\nabcd\n"},
		{"UnknownRune", "SabE\nab#d"},
		{"UpperCase", "SabE\nabCd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hm, _, err := heightmap.Parse(tc.input)
			if !errors.Is(err, heightmap.ErrMalformedInput) {
				t.Fatalf("Parse(%q) error = %v; want ErrMalformedInput", tc.input, err)
			}
			if hm != nil {
				t.Errorf("Parse(%q) returned a map alongside an error", tc.input)
			}
		})
	}
}

// TestMustParse_Panics ensures MustParse surfaces parse failures.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { heightmap.MustParse("Sabc") })
}

// TestInBounds exercises the single bounds predicate at every edge of a 2×3 map.
func TestInBounds(t *testing.T) {
	hm := mustParse(t, "Sbc\nabE")

	valid := []heightmap.Coordinate{{0, 0}, {0, 2}, {1, 0}, {1, 2}}
	for _, c := range valid {
		assert.Truef(t, hm.InBounds(c), "InBounds(%v)", c)
	}
	invalid := []heightmap.Coordinate{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {2, 3}}
	for _, c := range invalid {
		assert.Falsef(t, hm.InBounds(c), "InBounds(%v)", c)
	}
	assert.Panics(t, func() { hm.At(heightmap.Coordinate{Row: 2, Col: 0}) })
}

// TestIndexRoundTrip checks Index and CoordinateOf are inverse.
func TestIndexRoundTrip(t *testing.T) {
	hm := mustParse(t, sample)
	for i := 0; i < hm.Len(); i++ {
		c := hm.CoordinateOf(i)
		require.Equal(t, i, hm.Index(c))
		require.Equal(t, hm.AtIndex(i), hm.At(c))
	}
}

// TestElevationOf covers the letter range and both markers.
func TestElevationOf(t *testing.T) {
	cases := []struct {
		r    rune
		want heightmap.Elevation
		ok   bool
	}{
		{'a', 0, true},
		{'m', 12, true},
		{'z', 25, true},
		{'S', 0, true},
		{'E', 25, true},
		{'A', 0, false},
		{'.', 0, false},
	}
	for _, tc := range cases {
		got, ok := heightmap.ElevationOf(tc.r)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ElevationOf(%q) = (%d,%v); want (%d,%v)", tc.r, got, ok, tc.want, tc.ok)
		}
	}
}

func mustParse(t *testing.T, text string) *heightmap.HeightMap {
	t.Helper()
	hm, _, err := heightmap.Parse(text)
	require.NoError(t, err)
	return hm
}

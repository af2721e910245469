package regions

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindColorAt_Bounds(t *testing.T) {
	e := newEngine(t)
	restore(t, e, maskBuffer(t,
		"####",
		"#..#",
		"####",
	))

	tests := []struct {
		name  string
		x, y  int
		want  Label
		found bool
	}{
		{"origin is excluded", 0, 0, 0, false},
		{"first column is excluded", 0, 1, 0, false},
		{"first row is excluded", 2, 0, 0, false},
		{"inside opaque", 3, 1, 1, true},
		{"inside transparent", 1, 1, 0, true},
		{"last cell", 3, 2, 1, true},
		{"past right edge", 4, 1, 0, false},
		{"past bottom edge", 1, 3, 0, false},
		{"negative x", -1, 1, 0, false},
		{"negative y", 1, -5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.FindColorAt(tt.x, tt.y)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindColorAt_Empty(t *testing.T) {
	e := newEngine(t)
	_, ok := e.FindColorAt(1, 1)
	assert.False(t, ok)
}

func TestFindColorAt_ClassifiedGrid(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Recalculate(maskBuffer(t, "#.#", "#.#")))

	l, ok := e.FindColorAt(2, 1)
	require.True(t, ok)
	assert.Equal(t, e.DefaultLabel(), l)
}

func TestFindRegionWithColor_RowMajor(t *testing.T) {
	e := newEngine(t)
	restore(t, e, maskBuffer(t,
		".##",
		"#..",
	))

	assert.Equal(t, []Point{{1, 0}, {2, 0}, {0, 1}}, e.FindRegionWithColor(1))
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 1}}, e.FindRegionWithColor(0))
}

func TestFindRegionWithColor_Unknown(t *testing.T) {
	e := newEngine(t)
	restore(t, e, maskBuffer(t, "#"))

	got := e.FindRegionWithColor(99)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindRegionWithColor_CountsMatchGrid(t *testing.T) {
	e := newEngine(t)
	restore(t, e, randomMask(rand.New(rand.NewSource(3)), 31, 19, 0.5))

	counts := make(map[Label]int)
	for _, row := range e.Value() {
		for _, l := range row {
			counts[l]++
		}
	}
	for l, n := range counts {
		region := e.FindRegionWithColor(l)
		require.Len(t, region, n, "label %d", l)
		for _, p := range region {
			got := e.Value()[p.Y][p.X]
			require.Equal(t, l, got)
		}
	}
}

func TestFindRegionWithColor_ResultIsACopy(t *testing.T) {
	e := newEngine(t)
	restore(t, e, maskBuffer(t, "##", "##"))

	region := e.FindRegionWithColor(1)
	restore(t, e, maskBuffer(t, "..", ".."))

	assert.Len(t, region, 4)
	assert.Empty(t, e.FindRegionWithColor(1))
}

func TestHasRegions(t *testing.T) {
	tests := []struct {
		name string
		grid [][]Label
		want bool
	}{
		{"all transparent", [][]Label{{0, 0}, {0, 0}}, false},
		{"single label", [][]Label{{0, 1}, {1, 0}}, false},
		{"two labels", [][]Label{{1, 0}, {0, 2}}, true},
		{"transparent between equal labels", [][]Label{{3, 0, 0, 3}}, false},
		{"labels below transparent", [][]Label{{-2, 0, -3}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, WithGrid(tt.grid))
			assert.Equal(t, tt.want, e.HasRegions())
		})
	}
}

func TestHasRegions_Empty(t *testing.T) {
	assert.False(t, newEngine(t).HasRegions())
}

func TestRegions(t *testing.T) {
	e := newEngine(t)
	restore(t, e, maskBuffer(t,
		"##..#",
		"#....",
		"...##",
	))

	assert.Equal(t, []RegionSummary{
		{Label: 1, Pixels: 3},
		{Label: 2, Pixels: 1},
		{Label: 3, Pixels: 2},
	}, e.Regions())
}

func TestValue_RoundTrip(t *testing.T) {
	e := newEngine(t)
	restore(t, e, randomMask(rand.New(rand.NewSource(11)), 12, 9, 0.5))

	rebuilt := newEngine(t, WithGrid(e.Value()))

	assert.Equal(t, e.Value(), rebuilt.Value())
	assert.Equal(t, e.Regions(), rebuilt.Regions())
	assert.Equal(t, e.HasRegions(), rebuilt.HasRegions())
	for y := 0; y < 9; y++ {
		for x := 0; x < 12; x++ {
			want, wok := e.FindColorAt(x, y)
			got, gok := rebuilt.FindColorAt(x, y)
			assert.Equal(t, wok, gok)
			assert.Equal(t, want, got)
		}
	}
}

package regions

import "sort"

// FindColorAt returns the label at (x, y).
//
// Only cells with 0 < x < width and 0 < y < height are reported; the first
// row and the first column are treated as outside the grid, the same as
// coordinates past the far edges. Those calls return (0, false).
func (e *Engine) FindColorAt(x, y int) (Label, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if y <= 0 || y >= e.height {
		return 0, false
	}
	if x <= 0 || x >= e.width {
		return 0, false
	}
	return e.cells[y*e.width+x], true
}

// FindRegionWithColor returns every coordinate holding exactly l, in
// row-major order. It works for any label, including the transparent one.
// The result is empty, not nil, when nothing matches.
func (e *Engine) FindRegionWithColor(l Label) []Point {
	e.mu.RLock()
	defer e.mu.RUnlock()

	region := make([]Point, 0)
	for i, c := range e.cells {
		if c == l {
			region = append(region, Point{X: i % e.width, Y: i / e.width})
		}
	}
	return region
}

// HasRegions reports whether the grid holds at least two different
// non-transparent labels. Transparent cells are ignored.
func (e *Engine) HasRegions() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	seen := false
	var previous Label
	for _, c := range e.cells {
		if c == e.transparent {
			continue
		}
		if !seen {
			previous = c
			seen = true
			continue
		}
		if c != previous {
			return true
		}
	}
	return false
}

// RegionSummary describes one label present in the grid.
type RegionSummary struct {
	Label  Label `json:"label"`
	Pixels int   `json:"pixels"`
}

// Regions returns every non-transparent label in the grid with its pixel
// count, sorted by label.
func (e *Engine) Regions() []RegionSummary {
	e.mu.RLock()
	defer e.mu.RUnlock()

	counts := make(map[Label]int)
	for _, c := range e.cells {
		if c != e.transparent {
			counts[c]++
		}
	}

	summaries := make([]RegionSummary, 0, len(counts))
	for l, n := range counts {
		summaries = append(summaries, RegionSummary{Label: l, Pixels: n})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Label < summaries[j].Label
	})
	return summaries
}

// Value returns a copy of the grid indexed as grid[y][x]. It can be passed
// to WithGrid to rebuild an equivalent engine. An empty engine returns nil.
func (e *Engine) Value() [][]Label {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.state == StateEmpty {
		return nil
	}
	grid := make([][]Label, e.height)
	for y := range grid {
		row := make([]Label, e.width)
		copy(row, e.cells[y*e.width:(y+1)*e.width])
		grid[y] = row
	}
	return grid
}

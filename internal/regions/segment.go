package regions

// neighborOffsets lists the 8-connected neighborhood, clockwise from north.
var neighborOffsets = [8]Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Segment labels every unassigned component of the grid. Components are
// discovered in row-major order; the first receives the default label and each
// later one the next label up, skipping the transparent sentinel and any label
// the grid already holds.
//
// Segment is idempotent: running it on a labeled grid reproduces the same grid.
// On an empty engine it does nothing.
func (e *Engine) Segment() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.segmentLocked()
}

// segmentLocked runs one labeling pass and returns the number of floods
// started. The caller must hold the write lock.
func (e *Engine) segmentLocked() int {
	if e.state == StateEmpty {
		return 0
	}

	n := len(e.cells)
	if cap(e.visited) < n {
		e.visited = make([]bool, n)
	} else {
		e.visited = e.visited[:n]
		clear(e.visited)
	}

	taken := e.takenLabels()
	next := e.unassigned
	floods := 0
	for i := 0; i < n; i++ {
		if e.cells[i] != e.unassigned || e.visited[i] {
			continue
		}
		e.flood(i, next)
		floods++

		next++
		for next == e.transparent || taken[next] {
			next++
		}
	}
	e.state = StateLabeled

	Logger().Debug("segmented grid",
		"width", e.width, "height", e.height, "regions", floods)
	return floods
}

// takenLabels returns the labels other than the two sentinels present in the
// grid. A grid restored with WithGrid can hold them next to leftover
// unassigned cells; a fresh classification holds none.
func (e *Engine) takenLabels() map[Label]bool {
	taken := make(map[Label]bool)
	for _, c := range e.cells {
		if c != e.unassigned && c != e.transparent {
			taken[c] = true
		}
	}
	return taken
}

// flood labels the component containing seed with target using breadth-first
// traversal. A neighbor joins when it is inside the grid, still holds the
// unassigned label and has not been visited during this pass. Transparent
// cells and cells of already sealed regions never hold the unassigned label,
// so the flood stops at them.
func (e *Engine) flood(seed int, target Label) {
	queue := e.queue[:0]
	queue = append(queue, seed)
	e.visited[seed] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		e.cells[cur] = target

		cx, cy := cur%e.width, cur/e.width
		for _, off := range neighborOffsets {
			nx, ny := cx+off.X, cy+off.Y
			if nx < 0 || nx >= e.width || ny < 0 || ny >= e.height {
				continue
			}
			ni := ny*e.width + nx
			if e.visited[ni] || e.cells[ni] != e.unassigned {
				continue
			}
			e.visited[ni] = true
			queue = append(queue, ni)
		}
	}

	// keep the grown backing array for the next flood
	e.queue = queue[:0]
}

package regions

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidConfig is returned when the transparent and default labels
	// are equal.
	ErrInvalidConfig = errors.New("regions: transparent and default labels must differ")

	// ErrMalformedBuffer is returned for a nil buffer, non-positive
	// dimensions or pixel data whose length is not Width*Height*4.
	ErrMalformedBuffer = errors.New("regions: malformed pixel buffer")

	// ErrMalformedGrid is returned when a pre-computed grid is empty or
	// has rows of different lengths.
	ErrMalformedGrid = errors.New("regions: malformed label grid")
)

// Label tags one grid cell. Two values are reserved per engine: the
// transparent label and the default label, which marks opaque cells that
// have not been grouped yet and doubles as the first region label.
type Label int

// Default sentinel values.
const (
	DefaultTransparentLabel Label = 0
	DefaultUnassignedLabel  Label = 1
)

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// State is the lifecycle stage of an Engine.
type State int

const (
	// StateEmpty means no buffer has been classified yet.
	StateEmpty State = iota
	// StateClassified means cells are only transparent or unassigned.
	StateClassified
	// StateLabeled means every opaque cell carries a region label.
	StateLabeled
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateClassified:
		return "classified"
	case StateLabeled:
		return "labeled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures an Engine at construction.
type Option func(*engineConfig)

type engineConfig struct {
	transparent Label
	unassigned  Label
	grid        [][]Label
}

// WithTransparentLabel sets the label stored in transparent cells.
func WithTransparentLabel(l Label) Option {
	return func(c *engineConfig) { c.transparent = l }
}

// WithDefaultLabel sets the label stored in opaque cells before labeling.
// It is also the label of the first region discovered.
func WithDefaultLabel(l Label) Option {
	return func(c *engineConfig) { c.unassigned = l }
}

// WithGrid seeds the engine with a previously computed label grid, as
// returned by Engine.Value. Rows are indexed by y. The grid is copied.
func WithGrid(grid [][]Label) Option {
	return func(c *engineConfig) { c.grid = grid }
}

// Engine owns a label grid and answers point and region queries on it.
// Create one with NewEngine.
type Engine struct {
	mu sync.RWMutex

	transparent Label
	unassigned  Label

	width  int
	height int
	cells  []Label // row-major, index y*width + x
	state  State

	// scratch reused across labeling passes
	visited []bool
	queue   []int
}

// NewEngine creates an engine with the given options. Without options the
// transparent label is 0 and the default label is 1.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		transparent: DefaultTransparentLabel,
		unassigned:  DefaultUnassignedLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.transparent == cfg.unassigned {
		return nil, fmt.Errorf("%w: both are %d", ErrInvalidConfig, cfg.transparent)
	}

	e := &Engine{
		transparent: cfg.transparent,
		unassigned:  cfg.unassigned,
	}
	if cfg.grid != nil {
		if err := e.loadGrid(cfg.grid); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) loadGrid(grid [][]Label) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return fmt.Errorf("%w: empty grid", ErrMalformedGrid)
	}
	width := len(grid[0])
	cells := make([]Label, 0, width*len(grid))
	for y, row := range grid {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), width)
		}
		cells = append(cells, row...)
	}
	e.width = width
	e.height = len(grid)
	e.cells = cells
	e.state = StateLabeled
	return nil
}

// TransparentLabel returns the transparent sentinel.
func (e *Engine) TransparentLabel() Label { return e.transparent }

// DefaultLabel returns the unassigned sentinel, which is also the first
// region label.
func (e *Engine) DefaultLabel() Label { return e.unassigned }

// Width returns the grid width.
func (e *Engine) Width() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width
}

// Height returns the grid height.
func (e *Engine) Height() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.height
}

// State returns the lifecycle stage of the grid.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Recalculate replaces the grid with a classification of buf: cells whose
// pixel alpha is below AlphaThreshold become transparent, all others become
// unassigned. Any previous labels are discarded.
//
// If buf is malformed the error wraps ErrMalformedBuffer and the grid is left
// exactly as it was.
func (e *Engine) Recalculate(buf *PixelBuffer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.replaceLocked(buf)
}

// RestoreRegions classifies buf and labels the result in one call. It
// returns the number of regions found.
func (e *Engine) RestoreRegions(buf *PixelBuffer) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.replaceLocked(buf); err != nil {
		return 0, err
	}
	return e.segmentLocked(), nil
}

// replaceLocked swaps in the classification of buf. The grid is untouched
// when buf is malformed. e.mu must be held for writing.
func (e *Engine) replaceLocked(buf *PixelBuffer) error {
	if err := buf.Validate(); err != nil {
		Logger().Warn("rejected pixel buffer", "err", err)
		return err
	}
	e.width = buf.Width
	e.height = buf.Height
	e.cells = classify(buf, e.transparent, e.unassigned)
	e.state = StateClassified
	return nil
}

// classify maps each pixel of buf to the transparent or unassigned label.
func classify(buf *PixelBuffer, transparent, unassigned Label) []Label {
	cells := make([]Label, buf.Width*buf.Height)
	for i := range cells {
		if buf.Data[i*4+3] < AlphaThreshold {
			cells[i] = transparent
		} else {
			cells[i] = unassigned
		}
	}
	return cells
}

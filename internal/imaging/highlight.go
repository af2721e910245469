package imaging

import (
	"image"
	"image/color"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// Default highlight colors, as hex strings for tool arguments.
const (
	DefaultActiveColor   = "#FF0000"
	DefaultInactiveColor = "#FFFFFF"
)

// Default highlight colors, parsed.
var (
	DefaultActive   = color.NRGBA{R: 0xFF, A: 0xFF}
	DefaultInactive = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Highlighter paints regions of an engine onto a private copy of the source
// pixels, the way a hover UI does: the region under the pointer is painted in
// the active color and the previously painted region is repainted in the
// inactive color.
//
// Painting is permanent for the copy. A region that was highlighted and then
// released keeps the inactive color, not its original pixels.
//
// A Highlighter is not safe for concurrent use.
type Highlighter struct {
	buf      *regions.PixelBuffer
	active   color.NRGBA
	inactive color.NRGBA

	lastLabel regions.Label
	last      []regions.Point
}

// HoverResult describes what a Hover call did.
type HoverResult struct {
	// Found is false when the point is outside the queryable grid.
	Found bool `json:"found"`

	// Transparent is true when the point is on a transparent pixel.
	Transparent bool `json:"transparent"`

	// Label is the region under the point, when Found.
	Label regions.Label `json:"label"`

	// Pixels is the number of pixels painted in the active color.
	Pixels int `json:"pixels"`

	// Released is the number of pixels repainted in the inactive color.
	Released int `json:"released"`
}

// NewHighlighter copies buf and returns a highlighter painting on the copy.
func NewHighlighter(buf *regions.PixelBuffer, active, inactive color.NRGBA) *Highlighter {
	return &Highlighter{
		buf:      buf.Clone(),
		active:   active,
		inactive: inactive,
	}
}

// SetColors changes the colors used by later paints.
func (h *Highlighter) SetColors(active, inactive color.NRGBA) {
	h.active = active
	h.inactive = inactive
}

// Hover highlights the region of e under (x, y).
//
//   - Outside the grid: the current highlight is released and nothing new is
//     painted, as when the pointer leaves the image.
//   - On a transparent pixel: nothing changes; the current highlight stays.
//   - On a region: the current highlight is released and the new region is
//     painted in the active color.
func (h *Highlighter) Hover(e *regions.Engine, x, y int) HoverResult {
	l, ok := e.FindColorAt(x, y)
	if !ok {
		return HoverResult{Released: h.Clear()}
	}
	if l == e.TransparentLabel() {
		return HoverResult{Found: true, Transparent: true, Label: l}
	}

	released := h.Clear()
	region := e.FindRegionWithColor(l)
	h.paint(region, h.active)
	h.last = region
	h.lastLabel = l

	return HoverResult{
		Found:    true,
		Label:    l,
		Pixels:   len(region),
		Released: released,
	}
}

// Clear repaints the highlighted region in the inactive color and returns
// the number of pixels repainted.
func (h *Highlighter) Clear() int {
	n := len(h.last)
	h.paint(h.last, h.inactive)
	h.last = nil
	return n
}

// Active returns the label currently highlighted.
func (h *Highlighter) Active() (regions.Label, bool) {
	return h.lastLabel, h.last != nil
}

// Image returns a copy of the painted pixels.
func (h *Highlighter) Image() *image.NRGBA {
	return ImageFromBuffer(h.buf)
}

func (h *Highlighter) paint(points []regions.Point, c color.NRGBA) {
	for _, p := range points {
		if p.X < 0 || p.X >= h.buf.Width || p.Y < 0 || p.Y >= h.buf.Height {
			continue
		}
		i := h.buf.Index(p.X, p.Y)
		h.buf.Data[i] = c.R
		h.buf.Data[i+1] = c.G
		h.buf.Data[i+2] = c.B
		h.buf.Data[i+3] = c.A
	}
}

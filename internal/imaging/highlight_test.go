package imaging

import (
	"image/color"
	"testing"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

var (
	testActive   = color.NRGBA{255, 0, 0, 255}
	testInactive = color.NRGBA{255, 255, 255, 255}
)

// segmentedFixture returns an engine and buffer for:
//
//	.....
//	.##.#
//	.##.#
func segmentedFixture(t *testing.T) (*regions.Engine, *regions.PixelBuffer) {
	t.Helper()
	buf := BufferFromImage(createMaskImage(
		".....",
		".##.#",
		".##.#",
	))
	e, err := regions.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if _, err := e.RestoreRegions(buf); err != nil {
		t.Fatalf("RestoreRegions failed: %v", err)
	}
	return e, buf
}

func pixelAt(h *Highlighter, x, y int) color.NRGBA {
	return h.Image().NRGBAAt(x, y)
}

func TestHighlighter_Hover(t *testing.T) {
	e, buf := segmentedFixture(t)
	h := NewHighlighter(buf, testActive, testInactive)

	res := h.Hover(e, 2, 1)
	if !res.Found || res.Transparent {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Label != 1 || res.Pixels != 4 || res.Released != 0 {
		t.Errorf("got %+v, want label 1 with 4 pixels", res)
	}
	for _, p := range []regions.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		if got := pixelAt(h, p.X, p.Y); got != testActive {
			t.Errorf("pixel %v: got %v, want active color", p, got)
		}
	}
	if got := pixelAt(h, 4, 1); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("other region repainted: %v", got)
	}
	if l, ok := h.Active(); !ok || l != 1 {
		t.Errorf("Active: got %d, %v", l, ok)
	}

	// the source buffer is never touched
	if buf.Data[buf.Index(1, 1)] != 0 {
		t.Error("Hover painted the caller's buffer")
	}
}

func TestHighlighter_MoveReleasesPrevious(t *testing.T) {
	e, buf := segmentedFixture(t)
	h := NewHighlighter(buf, testActive, testInactive)

	h.Hover(e, 1, 1)
	res := h.Hover(e, 4, 2)

	if res.Label != 2 || res.Pixels != 2 || res.Released != 4 {
		t.Errorf("got %+v, want label 2, 2 pixels, 4 released", res)
	}
	if got := pixelAt(h, 1, 1); got != testInactive {
		t.Errorf("released region: got %v, want inactive color", got)
	}
	if got := pixelAt(h, 4, 1); got != testActive {
		t.Errorf("new region: got %v, want active color", got)
	}
}

func TestHighlighter_TransparentKeepsHighlight(t *testing.T) {
	e, buf := segmentedFixture(t)
	h := NewHighlighter(buf, testActive, testInactive)

	h.Hover(e, 1, 1)
	res := h.Hover(e, 3, 1)

	if !res.Found || !res.Transparent || res.Released != 0 {
		t.Errorf("got %+v, want transparent hit with nothing released", res)
	}
	if got := pixelAt(h, 1, 1); got != testActive {
		t.Errorf("highlight lost over transparent pixel: %v", got)
	}
}

func TestHighlighter_OutsideReleases(t *testing.T) {
	e, buf := segmentedFixture(t)
	h := NewHighlighter(buf, testActive, testInactive)

	h.Hover(e, 1, 1)
	// x == 0 is outside the queryable grid
	res := h.Hover(e, 0, 1)

	if res.Found || res.Released != 4 {
		t.Errorf("got %+v, want not found with 4 released", res)
	}
	if _, ok := h.Active(); ok {
		t.Error("highlight still active after leaving the grid")
	}
	if got := pixelAt(h, 2, 2); got != testInactive {
		t.Errorf("got %v, want inactive color", got)
	}
}

func TestHighlighter_ClearTwice(t *testing.T) {
	e, buf := segmentedFixture(t)
	h := NewHighlighter(buf, testActive, testInactive)

	h.Hover(e, 4, 1)
	if n := h.Clear(); n != 2 {
		t.Errorf("first Clear: got %d, want 2", n)
	}
	if n := h.Clear(); n != 0 {
		t.Errorf("second Clear: got %d, want 0", n)
	}
}

func TestHighlighter_SetColors(t *testing.T) {
	e, buf := segmentedFixture(t)
	h := NewHighlighter(buf, testActive, testInactive)

	blue := color.NRGBA{0, 0, 255, 255}
	h.SetColors(blue, testInactive)
	h.Hover(e, 4, 1)

	if got := pixelAt(h, 4, 2); got != blue {
		t.Errorf("got %v, want %v", got, blue)
	}
}

func TestDefaultColorsMatchHex(t *testing.T) {
	tests := []struct {
		hex  string
		want color.NRGBA
	}{
		{DefaultActiveColor, DefaultActive},
		{DefaultInactiveColor, DefaultInactive},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.hex)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) failed: %v", tt.hex, err)
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

package imaging

import (
	"image/color"
	"testing"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

func TestRenderLabels(t *testing.T) {
	e, _ := segmentedFixture(t)

	img := RenderLabels(e)
	if img == nil {
		t.Fatal("RenderLabels returned nil")
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds: got %v, want 5x3", img.Bounds())
	}

	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("transparent cell: got %v, want zero color", got)
	}
	if got := img.NRGBAAt(2, 2); got != LabelColor(1) {
		t.Errorf("region 1: got %v, want %v", got, LabelColor(1))
	}
	if got := img.NRGBAAt(4, 1); got != LabelColor(2) {
		t.Errorf("region 2: got %v, want %v", got, LabelColor(2))
	}
}

func TestRenderLabels_Empty(t *testing.T) {
	e, err := regions.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if img := RenderLabels(e); img != nil {
		t.Errorf("expected nil image for empty engine, got %v", img.Bounds())
	}
}

func TestBufferRoundTrip(t *testing.T) {
	src := createMaskImage("#..", ".#.")
	src.SetNRGBA(2, 1, color.NRGBA{10, 20, 30, 200})

	buf := BufferFromImage(src)
	if buf.Width != 3 || buf.Height != 2 || len(buf.Data) != 24 {
		t.Fatalf("buffer shape: %dx%d with %d bytes", buf.Width, buf.Height, len(buf.Data))
	}
	if i := buf.Index(2, 1); buf.Data[i] != 10 || buf.Data[i+3] != 200 {
		t.Errorf("pixel (2,1): got %v", buf.Data[i:i+4])
	}

	back := ImageFromBuffer(buf)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if back.NRGBAAt(x, y) != src.NRGBAAt(x, y) {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, back.NRGBAAt(x, y), src.NRGBAAt(x, y))
			}
		}
	}
}

func TestBufferFromImage_OffsetBounds(t *testing.T) {
	src := createMaskImage("....", ".##.", "....")
	sub := src.SubImage(src.Bounds().Inset(1))

	buf := BufferFromImage(sub)
	if buf.Width != 2 || buf.Height != 1 {
		t.Fatalf("got %dx%d, want 2x1", buf.Width, buf.Height)
	}
	if buf.Alpha(0, 0) != 255 || buf.Alpha(1, 0) != 255 {
		t.Error("sub-image pixels not moved to the origin")
	}
}

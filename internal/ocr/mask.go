package ocr

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"

	"github.com/ironsheep/region-tools-mcp/internal/imaging"
	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// MaskRegion returns an image of buf's size that is white everywhere except
// at points, where the source pixels are composited over white.
func MaskRegion(buf *regions.PixelBuffer, points []regions.Point) *image.RGBA {
	// premultiplied copy, so compositing over white is one add per channel
	src := clone.AsRGBA(imaging.ImageFromBuffer(buf))

	out := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for i := range out.Pix {
		out.Pix[i] = 0xFF
	}

	for _, p := range points {
		if p.X < 0 || p.X >= buf.Width || p.Y < 0 || p.Y >= buf.Height {
			continue
		}
		c := src.RGBAAt(p.X, p.Y)
		rest := 255 - uint16(c.A)
		out.SetRGBA(p.X, p.Y, color.RGBA{
			R: uint8(uint16(c.R) + rest),
			G: uint8(uint16(c.G) + rest),
			B: uint8(uint16(c.B) + rest),
			A: 255,
		})
	}
	return out
}

package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// BufferFromImage converts img to a non-premultiplied RGBA pixel buffer.
// The buffer owns its pixel data; img is never aliased.
func BufferFromImage(img image.Image) *regions.PixelBuffer {
	// Clone always allocates a tightly packed NRGBA with Stride == 4*width.
	nrgba := imaging.Clone(img)
	return &regions.PixelBuffer{
		Width:  nrgba.Rect.Dx(),
		Height: nrgba.Rect.Dy(),
		Data:   nrgba.Pix,
	}
}

// ImageFromBuffer copies buf into a new *image.NRGBA.
func ImageFromBuffer(buf *regions.PixelBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	copy(img.Pix, buf.Data)
	return img
}

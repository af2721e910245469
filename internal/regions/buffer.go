package regions

import "fmt"

// AlphaThreshold is the lowest alpha value that counts as opaque.
const AlphaThreshold = 128

// PixelBuffer is a row-major RGBA pixel buffer with 4 bytes per pixel.
//
// The layout matches a canvas ImageData or the Pix slice of an
// *image.NRGBA with a stride of 4*Width: the channels of pixel (x, y) are
// Data[i], Data[i+1], Data[i+2], Data[i+3] (R, G, B, A) with
// i = 4*(x + y*Width).
type PixelBuffer struct {
	Width  int
	Height int
	Data   []byte
}

// Validate reports whether the buffer can be classified. The returned error
// wraps ErrMalformedBuffer.
func (b *PixelBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrMalformedBuffer)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d", ErrMalformedBuffer, b.Width, b.Height)
	}
	if b.Data == nil {
		return fmt.Errorf("%w: missing pixel data", ErrMalformedBuffer)
	}
	if want := b.Width * b.Height * 4; len(b.Data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrMalformedBuffer, len(b.Data), want, b.Width, b.Height)
	}
	return nil
}

// Index returns the offset of the red channel of pixel (x, y).
// No bounds checking is performed.
func (b *PixelBuffer) Index(x, y int) int {
	return 4 * (x + y*b.Width)
}

// Alpha returns the alpha channel of pixel (x, y).
// No bounds checking is performed.
func (b *PixelBuffer) Alpha(x, y int) uint8 {
	return b.Data[b.Index(x, y)+3]
}

// Opaque reports whether pixel (x, y) is at or above AlphaThreshold.
func (b *PixelBuffer) Opaque(x, y int) bool {
	return b.Alpha(x, y) >= AlphaThreshold
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	data := make([]byte, len(b.Data))
	copy(data, b.Data)
	return &PixelBuffer{Width: b.Width, Height: b.Height, Data: data}
}

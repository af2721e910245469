package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EncodedImage is a PNG image ready to hand to an MCP client.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as base64 PNG, optionally scaled.
//
// Scaling uses nearest-neighbor sampling so region edges stay crisp and no
// blended colors appear between regions. A scale of 0 or 1 keeps the
// original size; negative scales are rejected.
func EncodePNG(img image.Image, scale float64) (*EncodedImage, error) {
	if scale < 0 {
		return nil, fmt.Errorf("invalid scale %g: must be positive", scale)
	}

	out := img
	if scale != 0 && scale != 1.0 {
		newWidth := int(float64(img.Bounds().Dx()) * scale)
		newHeight := int(float64(img.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g shrinks %dx%d image to nothing",
				scale, img.Bounds().Dx(), img.Bounds().Dy())
		}
		out = imaging.Resize(img, newWidth, newHeight, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

package ocr

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// DefaultLanguage is used when no Tesseract language code is given.
const DefaultLanguage = "eng"

// Word is one recognized word and Tesseract's confidence in it.
type Word struct {
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
}

// RegionTextResult contains the text recognized inside a single region.
type RegionTextResult struct {
	Label  regions.Label `json:"label"`
	Pixels int           `json:"pixels"`

	// FullText is all recognized text with Tesseract's spacing and newlines.
	FullText string `json:"full_text"`

	// Words may be empty when word-level iteration fails; FullText is still set.
	Words []Word `json:"words"`
}

// RegionText runs OCR over the pixels of one region.
//
// Parameters:
//   - buf: The source pixels the region was segmented from.
//   - points: The region's pixel coordinates, as returned by
//     Engine.FindRegionWithColor.
//   - label: The region label, echoed in the result.
//   - language: Tesseract language code. Empty selects DefaultLanguage.
//
// Everything outside points is painted white before recognition, so only
// text drawn inside the region can be read.
func RegionText(buf *regions.PixelBuffer, points []regions.Point, label regions.Label, language string) (*RegionTextResult, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("region %d has no pixels", label)
	}
	if language == "" {
		language = DefaultLanguage
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, MaskRegion(buf, points)); err != nil {
		return nil, fmt.Errorf("failed to encode region image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(encoded.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	result := &RegionTextResult{
		Label:    label,
		Pixels:   len(points),
		FullText: text,
		Words:    []Word{},
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		regions.Logger().Debug("word boxes unavailable", "label", label, "error", err)
		return result, nil
	}
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		result.Words = append(result.Words, Word{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
		})
	}

	return result, nil
}

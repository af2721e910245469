package imaging

import (
	"image"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// RenderLabels draws the label grid of e: transparent cells stay fully
// transparent and every region is filled with LabelColor of its label.
// An engine with no grid yields a nil image.
func RenderLabels(e *regions.Engine) *image.NRGBA {
	grid := e.Value()
	if grid == nil {
		return nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, len(grid[0]), len(grid)))
	transparent := e.TransparentLabel()
	for y, row := range grid {
		for x, l := range row {
			if l == transparent {
				continue
			}
			img.SetNRGBA(x, y, LabelColor(l))
		}
	}
	return img
}

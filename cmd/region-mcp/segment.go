package main

import (
	"errors"
	"fmt"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/region-tools-mcp/internal/imaging"
	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// runSegment labels the image named by args[0] and writes its label map to
// args[1] as PNG. It returns the number of regions found.
func runSegment(args []string) (int, error) {
	if len(args) != 2 {
		return 0, errors.New("usage: region-mcp segment <in.png> <out.png>")
	}
	in, out := args[0], args[1]

	img, err := imgio.Open(in)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", in, err)
	}

	engine, err := regions.NewEngine()
	if err != nil {
		return 0, err
	}
	n, err := engine.RestoreRegions(imaging.BufferFromImage(img))
	if err != nil {
		return 0, fmt.Errorf("failed to segment %s: %w", in, err)
	}

	if err := imgio.Save(out, imaging.RenderLabels(engine), imgio.PNGEncoder()); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", out, err)
	}
	return n, nil
}

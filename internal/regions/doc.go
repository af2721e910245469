// Package regions partitions a raster image into connected opaque regions.
//
// An Engine owns a label grid with the same dimensions as the last pixel
// buffer it was given. Building the partition is a two step pipeline:
//
//  1. Recalculate classifies every pixel by its alpha channel. Pixels with
//     alpha below 128 receive the transparent label, all others receive the
//     default (unassigned) label.
//  2. Segment scans the grid in row-major order and floods every still
//     unassigned component with the next free label, using 8-connectivity.
//
// RestoreRegions runs both steps. Once labeled, FindColorAt answers "which
// region is under this pixel" and FindRegionWithColor lists every pixel of a
// region.
//
// # Labels
//
// Labels are plain integers. The first region found reuses the default label,
// later regions count upward from it in discovery order. A label value equal to
// the transparent sentinel is never issued.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner. Pixel (x, y)
// lives at byte offset 4*(x + y*width) of a PixelBuffer.
//
// # Thread Safety
//
// Engine is safe for concurrent use. Recalculate, Segment and RestoreRegions
// hold the write lock for their whole duration, queries share the read lock.
// Query results are copies and stay valid after the grid changes, but they
// describe the grid as it was when the query ran.
package regions

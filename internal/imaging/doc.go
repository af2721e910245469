// Package imaging connects image files to the region engine.
//
// On the way in it decodes files (PNG, JPEG, GIF), caches them and converts
// them to regions.PixelBuffer values. On the way out it paints region
// membership back onto a copy of the pixels, either one region at a time
// (Highlighter) or every region at once (RenderLabels), and encodes the
// result as base64 PNG.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Decoded images are
// normalized so their bounds start at (0,0).
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. A Highlighter keeps mutable paint
// state and must be guarded by its owner.
//
// # Color Representation
//
// Colors are accepted as hex strings: "#RGB", "#RRGGBB" or "#RRGGBBAA", with
// or without the leading '#'. Painted pixels are always fully opaque unless an
// explicit alpha is given.
package imaging

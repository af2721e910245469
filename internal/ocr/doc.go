// Package ocr reads the text painted inside one region of a segmented image.
//
// Regions in labeled maps and diagrams often carry a name or a number. This
// package isolates a region by keeping only its pixels, composited over a
// white background, and runs the Tesseract engine (via gosseract/v2) on the
// result. Pixels outside the region never reach the recognizer, so text from
// neighboring regions does not leak into the answer.
//
// # Requirements
//
// Tesseract and the language data for the requested language must be
// installed on the host. Building this package needs cgo.
//
// # Confidence Scores
//
// Word confidences are reported on a 0.0 to 1.0 scale (Tesseract reports
// percentages).
package ocr

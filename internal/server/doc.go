// Package server implements the MCP (Model Context Protocol) server for region tools.
//
// This package provides a JSON-RPC 2.0 server that exposes region segmentation
// through the MCP protocol, so an MCP client can ask which connected shape a
// pixel belongs to, list the shapes of an image, highlight them and read the
// text drawn inside them.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load and segment an image, report metadata and region count
//   - image_dimensions: Get width and height
//
// Region Queries:
//   - region_at: Label under a pixel
//   - region_pixels: Coordinates of every pixel of a label
//   - region_list: Labels with pixel counts
//
// Display:
//   - region_highlight: Hover highlight, returned as PNG
//   - region_clear_highlight: Release the current highlight
//   - region_render_labels: Label map rendered with one color per region
//
// OCR:
//   - region_text: Text drawn inside one region
//
// # Sessions
//
// The first tool call that names an image path loads the file, segments it
// and keeps the result for the lifetime of the process. Later calls on the
// same path reuse the labels and the highlight state. image_load with
// reload=true re-reads the file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/region-tools-mcp/internal/imaging"
	"github.com/ironsheep/region-tools-mcp/internal/ocr"
	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "region_at").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Fetches the image's session, segmenting it on first use
//  4. Calls the appropriate regions/imaging/ocr function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Region Queries
	case "region_at":
		return s.handleRegionAt(args)
	case "region_pixels":
		return s.handleRegionPixels(args)
	case "region_list":
		return s.handleRegionList(args)

	// Display
	case "region_highlight":
		return s.handleRegionHighlight(args)
	case "region_clear_highlight":
		return s.handleRegionClearHighlight(args)
	case "region_render_labels":
		return s.handleRegionRenderLabels(args)

	// OCR
	case "region_text":
		return s.handleRegionText(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

var errMissingPath = errors.New("path is required")

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path   string `json:"path"`
	Reload bool   `json:"reload"`
}

// ImageLoadResult is the image_load result: file metadata plus the outcome
// of segmentation.
type ImageLoadResult struct {
	imaging.ImageInfo

	Regions          int           `json:"regions"`
	TransparentLabel regions.Label `json:"transparent_label"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}

	var (
		sess *session
		err  error
	)
	if a.Reload {
		sess, err = s.sessions.reload(a.Path)
	} else {
		sess, err = s.sessions.get(a.Path)
	}
	if err != nil {
		return nil, err
	}

	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	return &ImageLoadResult{
		ImageInfo:        *info,
		Regions:          sess.regionCount,
		TransparentLabel: sess.engine.TransparentLabel(),
	}, nil
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Region Query Handlers ===

type pointArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// RegionAtResult reports the label under a coordinate.
type RegionAtResult struct {
	X           int           `json:"x"`
	Y           int           `json:"y"`
	Found       bool          `json:"found"`
	Transparent bool          `json:"transparent"`
	Label       regions.Label `json:"label"`
}

func (s *Server) handleRegionAt(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Path)
	if err != nil {
		return nil, err
	}

	l, ok := sess.engine.FindColorAt(a.X, a.Y)
	return &RegionAtResult{
		X:           a.X,
		Y:           a.Y,
		Found:       ok,
		Transparent: ok && l == sess.engine.TransparentLabel(),
		Label:       l,
	}, nil
}

type regionPixelsArgs struct {
	Path  string        `json:"path"`
	Label regions.Label `json:"label"`
	Limit *int          `json:"limit"`
}

// RegionPixelsResult lists the pixels of one region.
type RegionPixelsResult struct {
	Label     regions.Label   `json:"label"`
	Count     int             `json:"count"`
	Truncated bool            `json:"truncated"`
	Points    []regions.Point `json:"points"`
}

func (s *Server) handleRegionPixels(args json.RawMessage) (interface{}, error) {
	var a regionPixelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	limit := 1000
	if a.Limit != nil {
		limit = *a.Limit
	}
	if limit < 0 {
		return nil, fmt.Errorf("invalid limit %d: must not be negative", limit)
	}
	sess, err := s.sessions.get(a.Path)
	if err != nil {
		return nil, err
	}

	points := sess.engine.FindRegionWithColor(a.Label)
	result := &RegionPixelsResult{
		Label:  a.Label,
		Count:  len(points),
		Points: points,
	}
	if limit > 0 && len(points) > limit {
		result.Points = points[:limit]
		result.Truncated = true
	}
	return result, nil
}

// RegionListResult summarizes every region of an image.
type RegionListResult struct {
	HasRegions       bool                    `json:"has_regions"`
	Count            int                     `json:"count"`
	TransparentLabel regions.Label           `json:"transparent_label"`
	Regions          []regions.RegionSummary `json:"regions"`
}

func (s *Server) handleRegionList(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Path)
	if err != nil {
		return nil, err
	}

	summaries := sess.engine.Regions()
	return &RegionListResult{
		HasRegions:       sess.engine.HasRegions(),
		Count:            len(summaries),
		TransparentLabel: sess.engine.TransparentLabel(),
		Regions:          summaries,
	}, nil
}

// === Display Handlers ===

type regionHighlightArgs struct {
	Path          string  `json:"path"`
	X             int     `json:"x"`
	Y             int     `json:"y"`
	ActiveColor   string  `json:"active_color"`
	InactiveColor string  `json:"inactive_color"`
	Scale         float64 `json:"scale"`
}

// RegionHighlightResult combines what the hover did with the painted image.
type RegionHighlightResult struct {
	imaging.HoverResult
	Image *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleRegionHighlight(args json.RawMessage) (interface{}, error) {
	var a regionHighlightArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ActiveColor == "" {
		a.ActiveColor = imaging.DefaultActiveColor
	}
	if a.InactiveColor == "" {
		a.InactiveColor = imaging.DefaultInactiveColor
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	active, err := imaging.ParseHexColor(a.ActiveColor)
	if err != nil {
		return nil, fmt.Errorf("active_color: %w", err)
	}
	inactive, err := imaging.ParseHexColor(a.InactiveColor)
	if err != nil {
		return nil, fmt.Errorf("inactive_color: %w", err)
	}

	sess, err := s.sessions.get(a.Path)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.highlighter.SetColors(active, inactive)
	hover := sess.highlighter.Hover(sess.engine, a.X, a.Y)

	img, err := imaging.EncodePNG(sess.highlighter.Image(), a.Scale)
	if err != nil {
		return nil, err
	}
	return &RegionHighlightResult{HoverResult: hover, Image: img}, nil
}

type scaleArgs struct {
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

// RegionClearResult reports a released highlight.
type RegionClearResult struct {
	Released int                   `json:"released"`
	Image    *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleRegionClearHighlight(args json.RawMessage) (interface{}, error) {
	var a scaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	sess, err := s.sessions.get(a.Path)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	released := sess.highlighter.Clear()
	img, err := imaging.EncodePNG(sess.highlighter.Image(), a.Scale)
	if err != nil {
		return nil, err
	}
	return &RegionClearResult{Released: released, Image: img}, nil
}

// LabelLegendEntry names the color a label was rendered with.
type LabelLegendEntry struct {
	Label  regions.Label `json:"label"`
	Color  string        `json:"color"`
	Pixels int           `json:"pixels"`
}

// RenderLabelsResult is the rendered label map and its legend.
type RenderLabelsResult struct {
	Legend []LabelLegendEntry    `json:"legend"`
	Image  *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleRegionRenderLabels(args json.RawMessage) (interface{}, error) {
	var a scaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	sess, err := s.sessions.get(a.Path)
	if err != nil {
		return nil, err
	}

	rendered := imaging.RenderLabels(sess.engine)
	if rendered == nil {
		return nil, fmt.Errorf("image %s has no label map", a.Path)
	}
	img, err := imaging.EncodePNG(rendered, a.Scale)
	if err != nil {
		return nil, err
	}

	summaries := sess.engine.Regions()
	legend := make([]LabelLegendEntry, 0, len(summaries))
	for _, r := range summaries {
		legend = append(legend, LabelLegendEntry{
			Label:  r.Label,
			Color:  imaging.HexString(imaging.LabelColor(r.Label)),
			Pixels: r.Pixels,
		})
	}
	return &RenderLabelsResult{Legend: legend, Image: img}, nil
}

// === OCR Handlers ===

type regionTextArgs struct {
	Path     string         `json:"path"`
	Label    *regions.Label `json:"label"`
	X        *int           `json:"x"`
	Y        *int           `json:"y"`
	Language string         `json:"language"`
}

func (s *Server) handleRegionText(args json.RawMessage) (interface{}, error) {
	var a regionTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = ocr.DefaultLanguage
	}
	sess, err := s.sessions.get(a.Path)
	if err != nil {
		return nil, err
	}

	var label regions.Label
	switch {
	case a.Label != nil:
		label = *a.Label
	case a.X != nil && a.Y != nil:
		l, ok := sess.engine.FindColorAt(*a.X, *a.Y)
		if !ok {
			return nil, fmt.Errorf("point (%d, %d) is outside the image", *a.X, *a.Y)
		}
		label = l
	default:
		return nil, errors.New("either label or x and y are required")
	}
	if label == sess.engine.TransparentLabel() {
		return nil, fmt.Errorf("label %d is the transparent label", label)
	}

	return ocr.RegionText(sess.buf, sess.engine.FindRegionWithColor(label), label, a.Language)
}

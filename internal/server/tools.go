package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var scaleProperty = map[string]interface{}{
	"type":        "number",
	"description": "Optional scale factor for the returned image (e.g., 4.0 to enlarge small images). Default 1.0",
	"default":     1.0,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file, segment it into regions of connected opaque pixels, and return its dimensions, format and region count. Later region tools reuse this segmentation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Re-read the file and segment it again, discarding highlights. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Region Queries
		{
			Name:        "region_at",
			Description: "Get the region label at a pixel coordinate. Label 0 means the pixel is transparent. Coordinates on the first row or column, or outside the image, report found=false.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "region_pixels",
			Description: "List the coordinates of every pixel in a region, in row-major order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"label": map[string]interface{}{
						"type":        "integer",
						"description": "Region label, as returned by region_at or region_list",
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of points to return (0 for all). Default 1000",
						"default":     1000,
					},
				},
				"required": []string{"path", "label"},
			},
		},
		{
			Name:        "region_list",
			Description: "List every region in the image with its pixel count, and report whether the image holds any region at all.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Display
		{
			Name:        "region_highlight",
			Description: "Highlight the region under a pixel, as a pointer hovering over the image would: the region is painted in the active color and the previously highlighted region is repainted in the inactive color. Returns the painted image as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate of the pointer",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate of the pointer",
					},
					"active_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color for the highlighted region. Default #FF0000",
						"default":     "#FF0000",
					},
					"inactive_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color for a released region. Default #FFFFFF",
						"default":     "#FFFFFF",
					},
					"scale": scaleProperty,
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "region_clear_highlight",
			Description: "Release the highlighted region, repainting it in the inactive color. Returns the painted image as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty,
					"scale": scaleProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "region_render_labels",
			Description: "Render the label map: every region painted in its own color, transparent pixels left transparent. Returns base64-encoded PNG and the color used for each label.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty,
					"scale": scaleProperty,
				},
				"required": []string{"path"},
			},
		},

		// OCR
		{
			Name:        "region_text",
			Description: "Extract text drawn inside one region using OCR. Pixels outside the region are masked out. Give either a label or a coordinate inside the region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"label": map[string]interface{}{
						"type":        "integer",
						"description": "Region label",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate inside the region (used when label is omitted)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate inside the region (used when label is omitted)",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (default: eng)",
						"default":     "eng",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

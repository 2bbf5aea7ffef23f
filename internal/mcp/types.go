package mcp

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	Keywords []string `json:"keywords,omitempty" jsonschema:"Title keywords to filter by (case-insensitive substring). Defaults to the configured keywords."`
	All      bool     `json:"all,omitempty" jsonschema:"When true, list every visible window instead of filtering by keyword."`
}

// WindowInfo describes one visible top-level window.
type WindowInfo struct {
	ID     uint32  `json:"id"`
	Title  string  `json:"title"`
	AppID  string  `json:"app_id,omitempty"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Ratio  float64 `json:"ratio"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// MeasureWindowInput is the input for the measure_window tool.
type MeasureWindowInput struct {
	Keyword string `json:"keyword,omitempty" jsonschema:"Title keyword to locate the window. Defaults to the configured keyword list, tried in order."`
}

// MeasureWindowOutput is the output for the measure_window tool.
type MeasureWindowOutput struct {
	Window          WindowInfo `json:"window"`
	TargetRatio     float64    `json:"target_ratio"`
	RawRatio        float64    `json:"raw_ratio"`
	HeaderCorrected float64    `json:"header_corrected_ratio"`
	FullyCorrected  float64    `json:"fully_corrected_ratio"`
	NearTarget      bool       `json:"near_target"`
	AdBannerLikely  bool       `json:"ad_banner_likely"`
	IdealHeight     int        `json:"ideal_height"`
}

// ComputePlacementInput is the input for the compute_placement tool.
// Zero-valued dimensions fall back to the configured reference values.
type ComputePlacementInput struct {
	Ratio          float64 `json:"ratio" jsonschema:"required,Observed window width/height ratio"`
	ReferenceWidth int     `json:"reference_width,omitempty" jsonschema:"Reference region width in px (default: configured reference_width)"`
	TargetHeight   int     `json:"target_height,omitempty" jsonschema:"Target window height in px (default: configured target_height)"`
	ConfiguredX    int     `json:"configured_x,omitempty" jsonschema:"Configured X position in px (default: configured configured_x)"`
}

// ComputePlacementOutput is the output for the compute_placement tool.
type ComputePlacementOutput struct {
	RenderedWidth int    `json:"rendered_width"`
	OffsetX       int    `json:"offset_x"`
	OffsetY       int    `json:"offset_y"`
	Status        string `json:"status"`
	Warning       string `json:"warning,omitempty"`
}

// ResizeWindowInput is the input for the resize_window tool.
type ResizeWindowInput struct {
	Width   int    `json:"width" jsonschema:"required,Requested window width in px"`
	Height  int    `json:"height" jsonschema:"required,Requested window height in px"`
	Keyword string `json:"keyword,omitempty" jsonschema:"Title keyword to locate the window. Defaults to the configured keyword list."`
	X       *int   `json:"x,omitempty" jsonschema:"Optional new X position; current position is kept when omitted"`
	Y       *int   `json:"y,omitempty" jsonschema:"Optional new Y position; current position is kept when omitted"`
}

// ResizeWindowOutput is the output for the resize_window tool.
type ResizeWindowOutput struct {
	Requested WindowInfo `json:"requested"`
	Actual    WindowInfo `json:"actual"`
	Honored   bool       `json:"honored"`
}

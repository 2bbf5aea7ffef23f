// Package mcp exposes the window diagnostics as MCP tools so agent clients
// can measure and resize the emulator window without driving the CLI.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/linxsus/city-sub001/internal/config"
	"github.com/linxsus/city-sub001/internal/platform"
	"github.com/linxsus/city-sub001/internal/probe"
)

const (
	ServerName    = "winprobe"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for window geometry diagnostics.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	backend   platform.Backend
	logger    *slog.Logger
}

// NewServer creates an MCP server over the given window backend.
func NewServer(cfg *config.Config, backend platform.Backend, logger *slog.Logger) *Server {
	s := &Server{
		config:  cfg,
		backend: backend,
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List visible top-level windows with their geometry and width/height ratio. By default only windows whose title matches the configured emulator keywords are included; pass all=true to list everything.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "measure_window",
		Description: "Locate the emulator window and report its geometry, raw and header-corrected ratios, distance from the target ratio, an ad-banner verdict, and the ideal height for the target ratio.",
	}, s.handleMeasureWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "compute_placement",
		Description: "Run the ratio-based placement computation: derive the rendered width for a target height at the given ratio and the X offset that keeps the reference region anchored. A too-narrow result is reported as a warning, not a usable placement.",
	}, s.handleComputePlacement)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_window",
		Description: "Resize the emulator window and report the geometry that actually resulted. The host application may clamp the request; compare requested vs actual.",
	}, s.handleResizeWindow)
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.backend.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("list windows: %w", err)
	}

	if !args.All {
		keywords := args.Keywords
		if len(keywords) == 0 {
			keywords = s.config.TitleKeywords
		}
		windows = platform.FilterByTitle(windows, keywords)
	}

	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(windows))}
	for _, w := range windows {
		out.Windows = append(out.Windows, windowInfo(w))
	}

	s.logger.Info("list_windows", "count", len(out.Windows), "all", args.All)
	return nil, out, nil
}

func (s *Server) handleMeasureWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MeasureWindowInput) (*mcpsdk.CallToolResult, MeasureWindowOutput, error) {
	w, err := s.findWindow(args.Keyword)
	if err != nil {
		return nil, MeasureWindowOutput{}, err
	}

	report := probe.AnalyzeRatios(w.Bounds.Width, w.Bounds.Height, s.config.HeaderTop, s.config.HeaderRight)
	target := s.config.TargetRatio()

	out := MeasureWindowOutput{
		Window:          windowInfo(w),
		TargetRatio:     target,
		RawRatio:        report.Raw,
		HeaderCorrected: report.HeaderCorrected,
		FullyCorrected:  report.FullyCorrected,
		NearTarget:      report.NearTarget(target, s.config.RatioTolerance),
		AdBannerLikely:  probe.AdBannerLikely(report.Raw, s.config.AdRatioThreshold),
		IdealHeight:     probe.IdealHeight(w.Bounds.Width, target),
	}

	s.logger.Info("measure_window", "title", w.Title, "ratio", report.Raw)
	return nil, out, nil
}

func (s *Server) handleComputePlacement(_ context.Context, _ *mcpsdk.CallToolRequest, args ComputePlacementInput) (*mcpsdk.CallToolResult, ComputePlacementOutput, error) {
	referenceWidth := args.ReferenceWidth
	if referenceWidth == 0 {
		referenceWidth = s.config.ReferenceWidth
	}
	targetHeight := args.TargetHeight
	if targetHeight == 0 {
		targetHeight = s.config.TargetHeight
	}
	configuredX := args.ConfiguredX
	if configuredX == 0 {
		configuredX = s.config.ConfiguredX
	}

	if args.Ratio <= 0 {
		return nil, ComputePlacementOutput{}, fmt.Errorf("ratio must be positive, got %g", args.Ratio)
	}

	placement, err := probe.ComputePlacement(referenceWidth, targetHeight, args.Ratio, configuredX)
	out := ComputePlacementOutput{
		RenderedWidth: placement.RenderedWidth,
		OffsetX:       placement.OffsetX,
		OffsetY:       placement.OffsetY,
		Status:        string(placement.Status),
	}
	if err != nil {
		if !errors.Is(err, probe.ErrTooNarrow) {
			return nil, ComputePlacementOutput{}, err
		}
		// Configuration error, surfaced as a warning so the agent sees the
		// fallback position alongside the failure.
		out.Warning = err.Error()
	}

	s.logger.Info("compute_placement", "status", out.Status, "rendered_width", out.RenderedWidth)
	return nil, out, nil
}

func (s *Server) handleResizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeWindowInput) (*mcpsdk.CallToolResult, ResizeWindowOutput, error) {
	if args.Width <= 0 || args.Height <= 0 {
		return nil, ResizeWindowOutput{}, fmt.Errorf("width and height must be positive, got %dx%d", args.Width, args.Height)
	}

	w, err := s.findWindow(args.Keyword)
	if err != nil {
		return nil, ResizeWindowOutput{}, err
	}

	session := probe.NewSession(s.backend, w.ID, s.config.SettleDelay())

	x, y := w.Bounds.X, w.Bounds.Y
	if args.X != nil {
		x = *args.X
	}
	if args.Y != nil {
		y = *args.Y
	}

	attempt, err := session.ResizeAt(x, y, args.Width, args.Height)
	if err != nil {
		return nil, ResizeWindowOutput{}, err
	}

	out := ResizeWindowOutput{
		Requested: rectInfo(w, attempt.Requested),
		Actual:    rectInfo(w, attempt.Actual),
		Honored:   attempt.Honored(),
	}

	s.logger.Info("resize_window",
		"title", w.Title,
		"requested", fmt.Sprintf("%dx%d", args.Width, args.Height),
		"actual", fmt.Sprintf("%dx%d", attempt.Actual.Width, attempt.Actual.Height),
		"honored", out.Honored,
	)
	return nil, out, nil
}

func (s *Server) findWindow(keyword string) (platform.Window, error) {
	keywords := s.config.TitleKeywords
	if keyword != "" {
		keywords = []string{keyword}
	}

	w, err := platform.FindWindow(s.backend, keywords)
	if err != nil {
		if errors.Is(err, platform.ErrNoWindow) {
			return platform.Window{}, fmt.Errorf("no window matching %v: %w", keywords, err)
		}
		return platform.Window{}, err
	}
	return w, nil
}

func windowInfo(w platform.Window) WindowInfo {
	return rectInfo(w, w.Bounds)
}

func rectInfo(w platform.Window, r platform.Rect) WindowInfo {
	return WindowInfo{
		ID:     uint32(w.ID),
		Title:  w.Title,
		AppID:  w.AppID,
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		Ratio:  r.Ratio(),
	}
}

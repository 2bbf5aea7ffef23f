package mcp

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linxsus/city-sub001/internal/config"
	"github.com/linxsus/city-sub001/internal/platform"
)

type fakeBackend struct {
	windows []platform.Window
	bounds  map[platform.WindowID]platform.Rect
}

func (f *fakeBackend) Displays() ([]platform.Display, error) { return nil, nil }

func (f *fakeBackend) ListWindows() ([]platform.Window, error) { return f.windows, nil }

func (f *fakeBackend) Geometry(id platform.WindowID) (platform.Rect, error) {
	return f.bounds[id], nil
}

func (f *fakeBackend) MoveResize(id platform.WindowID, bounds platform.Rect) error {
	f.bounds[id] = bounds
	return nil
}

func newTestServer(backend platform.Backend) *Server {
	cfg := config.DefaultConfig()
	cfg.SettleDelayMS = 0
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(cfg, backend, logger)
}

func TestHandleListWindows_FiltersByKeyword(t *testing.T) {
	backend := &fakeBackend{windows: []platform.Window{
		{ID: 1, Title: "BlueStacks App Player", Bounds: platform.Rect{Width: 600, Height: 1040}},
		{ID: 2, Title: "Firefox", Bounds: platform.Rect{Width: 1920, Height: 1080}},
	}}
	s := newTestServer(backend)

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	require.NoError(t, err)
	require.Len(t, out.Windows, 1)
	assert.Equal(t, "BlueStacks App Player", out.Windows[0].Title)
	assert.InDelta(t, 600.0/1040.0, out.Windows[0].Ratio, 1e-9)

	_, out, err = s.handleListWindows(context.Background(), nil, ListWindowsInput{All: true})
	require.NoError(t, err)
	assert.Len(t, out.Windows, 2)
}

func TestHandleMeasureWindow(t *testing.T) {
	backend := &fakeBackend{windows: []platform.Window{
		{ID: 1, Title: "farm1 - BlueStacks", Bounds: platform.Rect{Width: 915, Height: 1032}},
	}}
	s := newTestServer(backend)

	_, out, err := s.handleMeasureWindow(context.Background(), nil, MeasureWindowInput{})
	require.NoError(t, err)

	assert.False(t, out.NearTarget)
	assert.True(t, out.AdBannerLikely)
	assert.Equal(t, 1586, out.IdealHeight)
	assert.InDelta(t, 915.0/1032.0, out.RawRatio, 1e-9)
}

func TestHandleMeasureWindow_NoMatch(t *testing.T) {
	s := newTestServer(&fakeBackend{})

	_, _, err := s.handleMeasureWindow(context.Background(), nil, MeasureWindowInput{Keyword: "nope"})
	assert.ErrorIs(t, err, platform.ErrNoWindow)
}

func TestHandleComputePlacement_Defaults(t *testing.T) {
	s := newTestServer(&fakeBackend{})

	_, out, err := s.handleComputePlacement(context.Background(), nil, ComputePlacementInput{Ratio: 0.7})
	require.NoError(t, err)

	assert.Equal(t, "too-wide", out.Status)
	assert.Equal(t, 728, out.RenderedWidth)
	assert.Equal(t, -128, out.OffsetX)
	assert.Empty(t, out.Warning)
}

func TestHandleComputePlacement_TooNarrowWarns(t *testing.T) {
	s := newTestServer(&fakeBackend{})

	_, out, err := s.handleComputePlacement(context.Background(), nil, ComputePlacementInput{Ratio: 0.5})
	require.NoError(t, err)

	assert.Equal(t, "too-narrow", out.Status)
	assert.Equal(t, 520, out.RenderedWidth)
	assert.NotEmpty(t, out.Warning)
}

func TestHandleComputePlacement_RejectsBadRatio(t *testing.T) {
	s := newTestServer(&fakeBackend{})

	_, _, err := s.handleComputePlacement(context.Background(), nil, ComputePlacementInput{Ratio: 0})
	assert.Error(t, err)
}

func TestHandleResizeWindow(t *testing.T) {
	backend := &fakeBackend{
		windows: []platform.Window{
			{ID: 7, Title: "farm1", Bounds: platform.Rect{X: 50, Y: 60, Width: 600, Height: 900}},
		},
		bounds: map[platform.WindowID]platform.Rect{
			7: {X: 50, Y: 60, Width: 600, Height: 900},
		},
	}
	s := newTestServer(backend)

	_, out, err := s.handleResizeWindow(context.Background(), nil, ResizeWindowInput{Width: 728, Height: 1040})
	require.NoError(t, err)

	assert.True(t, out.Honored)
	assert.Equal(t, 728, out.Actual.Width)
	// Position preserved when x/y omitted.
	assert.Equal(t, 50, out.Actual.X)
	assert.Equal(t, 60, out.Actual.Y)
}

func TestHandleResizeWindow_RejectsBadSize(t *testing.T) {
	s := newTestServer(&fakeBackend{})

	_, _, err := s.handleResizeWindow(context.Background(), nil, ResizeWindowInput{Width: 0, Height: 1040})
	assert.Error(t, err)
}

package probe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linxsus/city-sub001/internal/platform"
)

// clampOps simulates a host application that enforces a minimum width,
// the way the emulator overrides requested sizes.
type clampOps struct {
	bounds   platform.Rect
	minWidth int
	calls    int
}

func (c *clampOps) Geometry(platform.WindowID) (platform.Rect, error) {
	return c.bounds, nil
}

func (c *clampOps) MoveResize(_ platform.WindowID, requested platform.Rect) error {
	c.calls++
	c.bounds = requested
	if c.bounds.Width < c.minWidth {
		c.bounds.Width = c.minWidth
	}
	return nil
}

func newTestSession(ops WindowOps) *Session {
	s := NewSession(ops, 1, 200*time.Millisecond)
	s.sleep = func(time.Duration) {}
	return s
}

func TestSessionResize_Honored(t *testing.T) {
	ops := &clampOps{bounds: platform.Rect{X: 10, Y: 20, Width: 800, Height: 600}}
	s := newTestSession(ops)

	attempt, err := s.Resize(700, 1040)
	require.NoError(t, err)

	assert.True(t, attempt.Honored())
	assert.False(t, attempt.WidthAdjusted())

	// Position is preserved.
	assert.Equal(t, 10, attempt.Actual.X)
	assert.Equal(t, 20, attempt.Actual.Y)
}

func TestSessionResize_ClampedByHost(t *testing.T) {
	ops := &clampOps{
		bounds:   platform.Rect{Width: 800, Height: 600},
		minWidth: 500,
	}
	s := newTestSession(ops)

	attempt, err := s.Resize(300, 1040)
	require.NoError(t, err)

	assert.False(t, attempt.Honored())
	assert.True(t, attempt.WidthAdjusted())
	assert.Equal(t, 300, attempt.Requested.Width)
	assert.Equal(t, 500, attempt.Actual.Width)
	assert.Equal(t, 1040, attempt.Actual.Height)
}

func TestSessionResizeHeight_KeepsWidth(t *testing.T) {
	ops := &clampOps{bounds: platform.Rect{X: 5, Y: 7, Width: 640, Height: 900}}
	s := newTestSession(ops)

	attempt, err := s.ResizeHeight(1000)
	require.NoError(t, err)

	assert.Equal(t, 640, attempt.Requested.Width)
	assert.Equal(t, 1000, attempt.Requested.Height)
	assert.True(t, attempt.Honored())
}

func TestSessionTryRatio_DerivesWidth(t *testing.T) {
	ops := &clampOps{bounds: platform.Rect{Width: 600, Height: 1040}}
	s := newTestSession(ops)

	attempt, err := s.TryRatio(0.7, 1040)
	require.NoError(t, err)

	// floor(1040 * 0.7) = 728
	assert.Equal(t, 728, attempt.Requested.Width)
	assert.Equal(t, 1040, attempt.Requested.Height)
	assert.Equal(t, 1, ops.calls)
}

func TestSessionResizeAt(t *testing.T) {
	ops := &clampOps{bounds: platform.Rect{X: 100, Y: 100, Width: 600, Height: 1040}}
	s := newTestSession(ops)

	attempt, err := s.ResizeAt(-128, 0, 728, 1040)
	require.NoError(t, err)

	assert.Equal(t, -128, attempt.Actual.X)
	assert.Equal(t, 0, attempt.Actual.Y)
}

package probe

import (
	"fmt"
	"math"
	"time"

	"github.com/linxsus/city-sub001/internal/platform"
)

// WindowOps is the subset of platform operations a resize session needs.
type WindowOps interface {
	Geometry(windowID platform.WindowID) (platform.Rect, error)
	MoveResize(windowID platform.WindowID, bounds platform.Rect) error
}

// Attempt records one resize request and the geometry that actually
// resulted. The host application may clamp or otherwise alter the requested
// size, so the actual geometry is re-read after a settle delay.
type Attempt struct {
	Requested platform.Rect
	Actual    platform.Rect
}

// Honored reports whether the window ended up with the requested size.
func (a Attempt) Honored() bool {
	return a.Actual.Width == a.Requested.Width && a.Actual.Height == a.Requested.Height
}

// WidthAdjusted reports whether the host changed the width on its own.
func (a Attempt) WidthAdjusted() bool {
	return a.Actual.Width != a.Requested.Width
}

// Session drives resize experiments against one live window. It accepts one
// parsed request per call so the interactive console loop stays a thin
// transport around it.
type Session struct {
	ops      WindowOps
	windowID platform.WindowID
	settle   time.Duration

	// sleep is swappable for tests.
	sleep func(time.Duration)
}

// NewSession creates a resize session for the given window. settle is the
// pause between issuing a resize and re-reading the geometry, giving the
// host time to apply (or override) the request.
func NewSession(ops WindowOps, windowID platform.WindowID, settle time.Duration) *Session {
	return &Session{
		ops:      ops,
		windowID: windowID,
		settle:   settle,
		sleep:    time.Sleep,
	}
}

// Geometry returns the window's current bounds.
func (s *Session) Geometry() (platform.Rect, error) {
	return s.ops.Geometry(s.windowID)
}

// Resize requests a new width and height at the window's current position
// and returns what the host actually applied.
func (s *Session) Resize(width, height int) (Attempt, error) {
	current, err := s.ops.Geometry(s.windowID)
	if err != nil {
		return Attempt{}, fmt.Errorf("read geometry: %w", err)
	}
	return s.apply(platform.Rect{X: current.X, Y: current.Y, Width: width, Height: height})
}

// ResizeAt requests a new position and size in one call.
func (s *Session) ResizeAt(x, y, width, height int) (Attempt, error) {
	return s.apply(platform.Rect{X: x, Y: y, Width: width, Height: height})
}

// ResizeHeight changes only the height, keeping the current width and
// position. Used to observe whether the host adjusts the width on its own.
func (s *Session) ResizeHeight(height int) (Attempt, error) {
	current, err := s.ops.Geometry(s.windowID)
	if err != nil {
		return Attempt{}, fmt.Errorf("read geometry: %w", err)
	}
	return s.apply(platform.Rect{X: current.X, Y: current.Y, Width: current.Width, Height: height})
}

// TryRatio resizes the window to targetHeight at the given ratio, deriving
// the width as floor(targetHeight * ratio).
func (s *Session) TryRatio(ratio float64, targetHeight int) (Attempt, error) {
	width := int(math.Floor(float64(targetHeight) * ratio))
	return s.Resize(width, targetHeight)
}

func (s *Session) apply(requested platform.Rect) (Attempt, error) {
	if err := s.ops.MoveResize(s.windowID, requested); err != nil {
		return Attempt{}, fmt.Errorf("moveresize: %w", err)
	}

	// Let the host settle the new geometry before trusting a re-read.
	if s.settle > 0 {
		s.sleep(s.settle)
	}

	actual, err := s.ops.Geometry(s.windowID)
	if err != nil {
		return Attempt{}, fmt.Errorf("re-read geometry: %w", err)
	}

	return Attempt{Requested: requested, Actual: actual}, nil
}

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampToDisplay_InsideIsUnchanged(t *testing.T) {
	displays := []Display{{Bounds: Rect{Width: 1920, Height: 1080}}}
	bounds := Rect{X: 100, Y: 50, Width: 600, Height: 900}

	assert.Equal(t, bounds, ClampToDisplay(bounds, displays))
}

func TestClampToDisplay_CutsOffscreenPart(t *testing.T) {
	displays := []Display{{Bounds: Rect{Width: 1920, Height: 1080}}}

	// Window shifted partially above and left of the screen origin.
	bounds := Rect{X: -128, Y: -10, Width: 728, Height: 1040}
	clamped := ClampToDisplay(bounds, displays)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 600, Height: 1030}, clamped)
}

func TestClampToDisplay_SecondMonitor(t *testing.T) {
	displays := []Display{
		{ID: 0, Bounds: Rect{Width: 1920, Height: 1080}},
		{ID: 1, Bounds: Rect{X: 1920, Width: 1920, Height: 1080}},
	}

	bounds := Rect{X: 2000, Y: 0, Width: 600, Height: 1040}
	assert.Equal(t, bounds, ClampToDisplay(bounds, displays))
}

func TestClampToDisplay_NoOverlapOrDisplays(t *testing.T) {
	bounds := Rect{X: 9000, Y: 9000, Width: 100, Height: 100}

	assert.Equal(t, bounds, ClampToDisplay(bounds, nil))
	assert.Equal(t, bounds, ClampToDisplay(bounds, []Display{{Bounds: Rect{Width: 1920, Height: 1080}}}))
}

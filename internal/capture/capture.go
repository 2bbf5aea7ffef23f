// Package capture wraps screen capture and the pixel heuristics used to
// estimate the emulator's header-bar height.
package capture

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/kbinani/screenshot"
)

// Grab captures the given screen-space region from the active display.
func Grab(x, y, width, height int) (*image.RGBA, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, fmt.Errorf("no active displays found")
	}

	bounds := image.Rect(x, y, x+width, y+height)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("capturing region %v: %w", bounds, err)
	}
	return img, nil
}

// Save writes the capture to disk; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving capture to %s: %w", path, err)
	}
	return nil
}

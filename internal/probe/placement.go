package probe

import (
	"errors"
	"fmt"
	"math"
)

// PlacementStatus classifies how the rendered width relates to the
// configured reference width.
type PlacementStatus string

const (
	// StatusExact means the rendered width equals the reference width.
	StatusExact PlacementStatus = "exact"
	// StatusTooWide means the window renders wider than the reference
	// region; the X position is shifted left to keep the region's right
	// edge anchored.
	StatusTooWide PlacementStatus = "too-wide"
	// StatusTooNarrow means the window renders narrower than the reference
	// region. The region cannot fit; this is a configuration error.
	StatusTooNarrow PlacementStatus = "too-narrow"
)

// ErrTooNarrow signals that the rendered width cannot contain the reference
// region. Callers must report it to the operator and not attempt placement.
var ErrTooNarrow = errors.New("rendered width smaller than reference width")

// Placement is the result of the ratio-based placement computation.
type Placement struct {
	RenderedWidth int
	OffsetX       int
	OffsetY       int
	Status        PlacementStatus
}

// ComputePlacement derives the effective rendered width for targetHeight at
// the observed window ratio and the X offset that keeps the reference region
// anchored at configuredX.
//
// The rendered width is floor(targetHeight * ratio). When it exceeds the
// reference width, the excess is subtracted from configuredX so the
// reference region's right edge stays in place; the result may be negative.
// When it falls short, the reference region does not fit and ErrTooNarrow is
// returned along with the uncorrected fallback position. The vertical offset
// is always 0.
func ComputePlacement(referenceWidth, targetHeight int, ratio float64, configuredX int) (Placement, error) {
	renderedWidth := int(math.Floor(float64(targetHeight) * ratio))

	switch {
	case renderedWidth == referenceWidth:
		return Placement{
			RenderedWidth: renderedWidth,
			OffsetX:       configuredX,
			Status:        StatusExact,
		}, nil

	case renderedWidth > referenceWidth:
		shift := renderedWidth - referenceWidth
		return Placement{
			RenderedWidth: renderedWidth,
			OffsetX:       configuredX - shift,
			Status:        StatusTooWide,
		}, nil

	default:
		// Fallback position only; the caller must treat this as a failure.
		return Placement{
			RenderedWidth: renderedWidth,
			OffsetX:       configuredX,
			Status:        StatusTooNarrow,
		}, fmt.Errorf("rendered width %d < reference width %d: %w", renderedWidth, referenceWidth, ErrTooNarrow)
	}
}

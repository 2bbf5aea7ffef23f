package probe

import "math"

// RatioReport holds the width/height ratios of a window measured under
// different header-bar correction assumptions. The emulator window carries a
// top chrome strip (title + navigation) and sometimes a right-hand banner;
// the interesting ratio is the one of the interior content region.
type RatioReport struct {
	Width  int
	Height int

	HeaderTop   int // assumed top chrome height in px
	HeaderRight int // assumed right banner width in px

	Raw             float64 // W / H
	HeaderCorrected float64 // W / (H - top)
	FullyCorrected  float64 // (W - right) / (H - top)
}

// AnalyzeRatios computes the raw and header-corrected ratios for a window of
// the given size. Degenerate denominators yield a 0 ratio, mirroring how the
// measurements are read (a collapsed window has no meaningful ratio).
func AnalyzeRatios(width, height, headerTop, headerRight int) RatioReport {
	r := RatioReport{
		Width:       width,
		Height:      height,
		HeaderTop:   headerTop,
		HeaderRight: headerRight,
	}

	r.Raw = safeRatio(width, height)
	r.HeaderCorrected = safeRatio(width, height-headerTop)
	r.FullyCorrected = safeRatio(width-headerRight, height-headerTop)

	return r
}

// DeltaFrom returns the absolute differences of each ratio from the target.
func (r RatioReport) DeltaFrom(target float64) (raw, headerCorrected, fullyCorrected float64) {
	return math.Abs(r.Raw - target),
		math.Abs(r.HeaderCorrected - target),
		math.Abs(r.FullyCorrected - target)
}

// NearTarget reports whether the raw ratio is within tolerance of the target
// ratio. A window further away is most likely showing an ad banner.
func (r RatioReport) NearTarget(target, tolerance float64) bool {
	return math.Abs(r.Raw-target) < tolerance
}

// AdBannerLikely reports whether a ratio exceeds the ad-detection threshold.
// A side banner widens the window, pushing the ratio well above the
// banner-free target.
func AdBannerLikely(ratio, threshold float64) bool {
	return ratio > threshold
}

// IdealHeight returns the height the window would need, at its current
// width, to reach the target ratio.
func IdealHeight(width int, targetRatio float64) int {
	if targetRatio <= 0 {
		return 0
	}
	return int(math.Round(float64(width) / targetRatio))
}

func safeRatio(width, height int) float64 {
	if height <= 0 {
		return 0
	}
	return float64(width) / float64(height)
}

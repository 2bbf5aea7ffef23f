package capture

import "image"

// RGB holds an 8-bit color value.
type RGB struct {
	R, G, B uint8
}

// Delta returns the summed absolute per-channel difference to another color.
func (c RGB) Delta(o RGB) int {
	return absDiff(c.R, o.R) + absDiff(c.G, o.G) + absDiff(c.B, o.B)
}

// Transition marks a row whose color jumped against the previous row.
type Transition struct {
	Y      int
	Before RGB
	After  RGB
	Delta  int
}

// ScanColumn samples pixel colors down one column of the image, starting at
// the top, for at most limit rows.
func ScanColumn(img image.Image, x, limit int) []RGB {
	bounds := img.Bounds()
	rows := bounds.Dy()
	if limit > 0 && limit < rows {
		rows = limit
	}

	column := make([]RGB, 0, rows)
	for y := 0; y < rows; y++ {
		r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		column = append(column, RGB{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
		})
	}
	return column
}

// DetectTransitions reports the rows whose summed per-channel difference
// against the previous row exceeds the threshold. This is a human-assistive
// heuristic for spotting the lower edge of the header bar, not a guaranteed
// measurement; the operator reviews the candidates against the saved
// capture.
func DetectTransitions(column []RGB, threshold int) []Transition {
	var transitions []Transition
	for y := 1; y < len(column); y++ {
		delta := column[y].Delta(column[y-1])
		if delta > threshold {
			transitions = append(transitions, Transition{
				Y:      y,
				Before: column[y-1],
				After:  column[y],
				Delta:  delta,
			})
		}
	}
	return transitions
}

// HeaderEstimate returns the first transition row, the best guess for where
// the header bar ends and the content begins.
func HeaderEstimate(transitions []Transition) (int, bool) {
	if len(transitions) == 0 {
		return 0, false
	}
	return transitions[0].Y, true
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

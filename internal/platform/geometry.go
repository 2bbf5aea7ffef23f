package platform

// ClampToDisplay intersects bounds with the display containing its center,
// so screen captures never request pixels outside the visible area. When no
// display contains the center, the first overlapping display is used;
// without any overlap the bounds are returned unchanged.
func ClampToDisplay(bounds Rect, displays []Display) Rect {
	if len(displays) == 0 {
		return bounds
	}

	cx := bounds.X + bounds.Width/2
	cy := bounds.Y + bounds.Height/2

	for _, d := range displays {
		if containsPoint(d.Bounds, cx, cy) {
			return intersect(bounds, d.Bounds)
		}
	}

	for _, d := range displays {
		r := intersect(bounds, d.Bounds)
		if r.Width > 0 && r.Height > 0 {
			return r
		}
	}

	return bounds
}

func containsPoint(r Rect, x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func intersect(a, b Rect) Rect {
	x1 := max(a.X, b.X)
	y1 := max(a.Y, b.Y)
	x2 := min(a.X+a.Width, b.X+b.Width)
	y2 := min(a.Y+a.Height, b.Y+b.Height)

	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

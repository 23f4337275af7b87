package overlay

import "github.com/djgmh9/Dicto-sub000/internal/model"

// ConstrainPosition clamps pos so a widget of the given edge length stays on
// a screen of screenW x screenH pixels. The horizontal axis tolerates the
// widget hanging half off either edge; the vertical axis keeps it fully on
// screen. Applied to loaded and default positions before first render, never
// to live drag output.
func ConstrainPosition(pos model.ScreenPosition, size, screenW, screenH int) model.ScreenPosition {
	minX := -size / 2
	maxX := screenW - size/2
	minY := 0
	maxY := screenH - size

	// A screen smaller than the widget collapses the range to its lower bound
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}

	return model.ScreenPosition{
		X: clamp(pos.X, minX, maxX),
		Y: clamp(pos.Y, minY, maxY),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

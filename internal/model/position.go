package model

import "fmt"

// Default position for the floating button, used when nothing has been
// saved yet or when loading the saved position times out.
const (
	DefaultButtonX = 0
	DefaultButtonY = 100
)

// ScreenPosition is a point on the screen in integer pixels, origin at the
// top-left corner.
type ScreenPosition struct {
	X int
	Y int
}

// DefaultButtonPosition returns the fallback position for the floating button.
func DefaultButtonPosition() ScreenPosition {
	return ScreenPosition{X: DefaultButtonX, Y: DefaultButtonY}
}

// String returns the "(x, y)" form used in log messages.
func (p ScreenPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Offset returns the position shifted by dx and dy.
func (p ScreenPosition) Offset(dx, dy int) ScreenPosition {
	return ScreenPosition{X: p.X + dx, Y: p.Y + dy}
}

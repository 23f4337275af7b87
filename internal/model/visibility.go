package model

// OverlayVisibility represents whether the floating button surface is
// attached to the overlay window system
type OverlayVisibility string

const (
	// OverlayHidden means the button surface is detached from the screen
	OverlayHidden OverlayVisibility = "Hidden"

	// OverlayVisible means the button surface is attached and shown
	OverlayVisible OverlayVisibility = "Visible"
)

// String returns the string representation of OverlayVisibility
func (v OverlayVisibility) String() string {
	return string(v)
}

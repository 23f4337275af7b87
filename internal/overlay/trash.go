package overlay

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// Trash zone geometry
const (
	// TrashProximityPx is the Euclidean distance from the zone center within
	// which a release deletes the floating button.
	TrashProximityPx = 200

	// TrashZoneSizePx is the rendered edge length of the zone.
	TrashZoneSizePx = 96

	// TrashBottomMarginPx keeps the zone off the very bottom edge.
	TrashBottomMarginPx = 24
)

// TrashZone is the momentary drop target shown near the bottom center of the
// screen while the floating button is dragged. Releasing the button within
// TrashProximityPx of its center deletes the button; the same center drives
// both the highlight and the deletion test.
type TrashZone struct {
	widget.BaseWidget

	windows WindowSystem

	origin  model.ScreenPosition
	shown   bool
	near    bool

	background *canvas.Circle
	icon       *widget.Icon
}

// NewTrashZone creates a hidden trash zone drawing on windows
func NewTrashZone(windows WindowSystem) *TrashZone {
	tz := &TrashZone{
		windows: windows,
		background: canvas.NewCircle(color.RGBA{R: 66, G: 66, B: 66, A: 200}), // Dim gray at rest
		icon:       widget.NewIcon(theme.DeleteIcon()),
	}
	tz.ExtendBaseWidget(tz)
	return tz
}

// Show attaches the zone at the bottom center of the screen. No-op when
// already shown.
func (tz *TrashZone) Show() error {
	if tz.shown {
		return nil
	}

	screenW, screenH := tz.windows.ScreenSize()
	tz.origin = model.ScreenPosition{
		X: (screenW - TrashZoneSizePx) / 2,
		Y: screenH - TrashZoneSizePx - TrashBottomMarginPx,
	}

	if err := tz.windows.Attach(tz, tz.origin); err != nil {
		log.Printf("Failed to attach trash zone: %v", err)
		return fmt.Errorf("attach trash zone: %w", err)
	}
	tz.Resize(fyne.NewSize(TrashZoneSizePx, TrashZoneSizePx))
	tz.shown = true
	return nil
}

// Hide detaches the zone and resets the highlight. No-op when hidden.
func (tz *TrashZone) Hide() {
	if !tz.shown {
		return
	}
	tz.windows.Detach(tz)
	tz.shown = false
	tz.near = false
}

// Shown reports whether the zone is currently attached
func (tz *TrashZone) Shown() bool {
	return tz.shown
}

// Center returns the deletion center in screen coordinates. It derives from
// the origin used to place the zone, so highlight and deletion agree.
func (tz *TrashZone) Center() model.ScreenPosition {
	return tz.origin.Offset(TrashZoneSizePx/2, TrashZoneSizePx/2)
}

// IsNear reports whether the point (x, y) falls within the deletion distance
// of the zone center. This is the sole deletion-intent test.
func (tz *TrashZone) IsNear(x, y int) bool {
	c := tz.Center()
	dx := float64(x - c.X)
	dy := float64(y - c.Y)
	return math.Sqrt(dx*dx+dy*dy) <= TrashProximityPx
}

// UpdateVisualState highlights the zone while the dragged button hovers
// within deletion distance of (x, y)
func (tz *TrashZone) UpdateVisualState(x, y int) {
	near := tz.IsNear(x, y)
	if near == tz.near {
		return
	}
	tz.near = near
	tz.Refresh()
}

// CreateRenderer creates the renderer for the trash zone
func (tz *TrashZone) CreateRenderer() fyne.WidgetRenderer {
	return &trashZoneRenderer{zone: tz}
}

type trashZoneRenderer struct {
	zone *TrashZone
}

func (r *trashZoneRenderer) Layout(size fyne.Size) {
	r.zone.background.Resize(size)

	iconSize := size.Width / 2
	r.zone.icon.Resize(fyne.NewSize(iconSize, iconSize))
	r.zone.icon.Move(fyne.NewPos((size.Width-iconSize)/2, (size.Height-iconSize)/2))
}

func (r *trashZoneRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TrashZoneSizePx, TrashZoneSizePx)
}

func (r *trashZoneRenderer) Refresh() {
	if r.zone.near {
		r.zone.background.FillColor = color.RGBA{R: 183, G: 28, B: 28, A: 230} // Red when a drop would delete
	} else {
		r.zone.background.FillColor = color.RGBA{R: 66, G: 66, B: 66, A: 200}
	}
	r.zone.background.Refresh()
	r.zone.icon.Refresh()
}

func (r *trashZoneRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.zone.background, r.zone.icon}
}

func (r *trashZoneRenderer) Destroy() {}

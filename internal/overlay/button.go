package overlay

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// ButtonSizePx is the edge length of the floating button
const ButtonSizePx = 56

// OverlayButton is the draggable always-on-top button that opens the
// translator. It owns its on-screen surface: it attaches and detaches
// itself through the WindowSystem and follows the pointer during drags.
// High-level gesture events are reported through SetCallbacks.
//
// All methods must be called from the UI event goroutine.
type OverlayButton struct {
	widget.BaseWidget

	windows    WindowSystem
	recognizer *DragRecognizer

	position  model.ScreenPosition
	attached  bool
	destroyed bool

	// lastPointer is the most recent raw pointer location, needed because
	// Fyne's DragEnd callback carries no coordinates.
	lastPointer model.ScreenPosition

	// suppressTap drops the tap Fyne synthesizes after the raw pointer
	// stream already completed the gesture.
	suppressTap bool

	onTapped    func()
	onDragStart func(origin model.ScreenPosition)
	onDragMove  func(touch, widgetPos model.ScreenPosition)
	onDragEnd   func(touch, finalPos model.ScreenPosition, wasDragging bool)

	background *canvas.Circle
	icon       *widget.Icon
}

// NewOverlayButton creates the floating button at pos. The button is not
// attached until Show is called.
func NewOverlayButton(windows WindowSystem, pos model.ScreenPosition) *OverlayButton {
	b := &OverlayButton{
		windows:    windows,
		position:   pos,
		background: canvas.NewCircle(color.RGBA{R: 25, G: 118, B: 210, A: 255}), // Blue for primary actions
		icon:       widget.NewIcon(theme.SearchIcon()),
	}
	b.recognizer = NewDragRecognizer(GestureEvents{
		OnDragStart: b.handleDragStart,
		OnDragMove:  b.handleDragMove,
		OnDragEnd:   b.handleDragEnd,
		OnTapped:    b.handleTapped,
	})
	b.ExtendBaseWidget(b)
	return b
}

// SetCallbacks wires the owner's handlers for tap, drag start, drag move and
// drag end. Must be called before the button is shown.
func (b *OverlayButton) SetCallbacks(
	onTapped func(),
	onDragStart func(origin model.ScreenPosition),
	onDragMove func(touch, widgetPos model.ScreenPosition),
	onDragEnd func(touch, finalPos model.ScreenPosition, wasDragging bool),
) {
	if onTapped == nil || onDragEnd == nil {
		log.Printf("Warning: overlay button callbacks are not fully wired")
	}
	b.onTapped = onTapped
	b.onDragStart = onDragStart
	b.onDragMove = onDragMove
	b.onDragEnd = onDragEnd
}

// Show attaches the button at its retained position. No-op when already
// attached; an error after Destroy.
func (b *OverlayButton) Show() error {
	if b.destroyed {
		return fmt.Errorf("show destroyed button: %w", ErrWindowAttach)
	}
	if b.attached {
		return nil
	}
	if err := b.windows.Attach(b, b.position); err != nil {
		log.Printf("Failed to attach floating button: %v", err)
		return fmt.Errorf("attach floating button: %w", err)
	}
	b.Resize(fyne.NewSize(ButtonSizePx, ButtonSizePx))
	b.Move(fyne.NewPos(float32(b.position.X), float32(b.position.Y)))
	b.attached = true
	return nil
}

// Hide detaches the surface but keeps position and size so Restore can
// bring the button back unchanged
func (b *OverlayButton) Hide() {
	if !b.attached {
		return
	}
	b.windows.Detach(b)
	b.attached = false
}

// Restore re-attaches the button with its retained parameters. Idempotent
// when already visible.
func (b *OverlayButton) Restore() error {
	return b.Show()
}

// Destroy detaches the button and discards it. Terminal: a destroyed button
// cannot be shown again and a fresh one must be constructed.
func (b *OverlayButton) Destroy() {
	if b.attached {
		b.windows.Detach(b)
		b.attached = false
	}
	b.destroyed = true
}

// CurrentPosition returns the live position, including mid-drag
func (b *OverlayButton) CurrentPosition() model.ScreenPosition {
	return b.position
}

// Attached reports whether the button surface is on screen
func (b *OverlayButton) Attached() bool {
	return b.attached
}

// Tapped implements fyne.Tappable. The raw pointer stream normally completes
// the gesture first, in which case the synthesized tap is dropped; drivers
// that only deliver taps fall through to a synthetic press and release.
func (b *OverlayButton) Tapped(ev *fyne.PointEvent) {
	if b.suppressTap {
		b.suppressTap = false
		return
	}
	if b.recognizer.Active() {
		return
	}
	touch := positionToScreen(ev.AbsolutePosition)
	b.recognizer.PointerDown(touch, b.position)
	b.recognizer.PointerUp(touch)
}

// Dragged implements fyne.Draggable
func (b *OverlayButton) Dragged(ev *fyne.DragEvent) {
	touch := positionToScreen(ev.AbsolutePosition)
	if !b.recognizer.Active() {
		// Drag without a delivered press, start the session here
		b.recognizer.PointerDown(touch, b.position)
	}
	b.lastPointer = touch
	b.recognizer.PointerMove(touch)
}

// DragEnd implements fyne.Draggable. Fyne passes no coordinates here, so the
// last observed pointer location stands in for the release point.
func (b *OverlayButton) DragEnd() {
	if !b.recognizer.Active() {
		return
	}
	b.suppressTap = true
	b.recognizer.PointerUp(b.lastPointer)
}

// MouseDown implements desktop.Mouseable
func (b *OverlayButton) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.suppressTap = false
	touch := positionToScreen(ev.AbsolutePosition)
	b.lastPointer = touch
	b.recognizer.PointerDown(touch, b.position)
}

// MouseUp implements desktop.Mouseable
func (b *OverlayButton) MouseUp(ev *desktop.MouseEvent) {
	if !b.recognizer.Active() {
		return
	}
	b.suppressTap = true
	b.recognizer.PointerUp(positionToScreen(ev.AbsolutePosition))
}

// TouchDown implements mobile.Touchable
func (b *OverlayButton) TouchDown(ev *mobile.TouchEvent) {
	b.suppressTap = false
	touch := positionToScreen(ev.AbsolutePosition)
	b.lastPointer = touch
	b.recognizer.PointerDown(touch, b.position)
}

// TouchUp implements mobile.Touchable
func (b *OverlayButton) TouchUp(ev *mobile.TouchEvent) {
	if !b.recognizer.Active() {
		return
	}
	b.suppressTap = true
	b.recognizer.PointerUp(positionToScreen(ev.AbsolutePosition))
}

// TouchCancel implements mobile.Touchable. A canceled gesture emits neither
// a tap nor a drag end.
func (b *OverlayButton) TouchCancel(ev *mobile.TouchEvent) {
	b.recognizer.PointerCancel()
}

// CreateRenderer creates the renderer for the floating button
func (b *OverlayButton) CreateRenderer() fyne.WidgetRenderer {
	return &overlayButtonRenderer{button: b}
}

func (b *OverlayButton) handleDragStart(origin model.ScreenPosition) {
	if b.onDragStart != nil {
		b.onDragStart(origin)
	}
}

func (b *OverlayButton) handleDragMove(touch, widgetPos model.ScreenPosition) {
	b.position = widgetPos
	b.Move(fyne.NewPos(float32(widgetPos.X), float32(widgetPos.Y)))
	if b.onDragMove != nil {
		b.onDragMove(touch, widgetPos)
	}
}

func (b *OverlayButton) handleDragEnd(touch, finalPos model.ScreenPosition, wasDragging bool) {
	b.position = finalPos
	if b.onDragEnd != nil {
		b.onDragEnd(touch, finalPos, wasDragging)
	}
}

func (b *OverlayButton) handleTapped() {
	if b.onTapped != nil {
		b.onTapped()
	}
}

func positionToScreen(pos fyne.Position) model.ScreenPosition {
	return model.ScreenPosition{X: int(pos.X), Y: int(pos.Y)}
}

type overlayButtonRenderer struct {
	button *OverlayButton
}

func (r *overlayButtonRenderer) Layout(size fyne.Size) {
	r.button.background.Resize(size)

	iconSize := size.Width * 0.55
	r.button.icon.Resize(fyne.NewSize(iconSize, iconSize))
	r.button.icon.Move(fyne.NewPos((size.Width-iconSize)/2, (size.Height-iconSize)/2))
}

func (r *overlayButtonRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ButtonSizePx, ButtonSizePx)
}

func (r *overlayButtonRenderer) Refresh() {
	r.button.background.Refresh()
	r.button.icon.Refresh()
}

func (r *overlayButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.button.background, r.button.icon}
}

func (r *overlayButtonRenderer) Destroy() {}

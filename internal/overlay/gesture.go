package overlay

import "github.com/djgmh9/Dicto-sub000/internal/model"

// DragThresholdPx is the movement, in pixels along either axis, that turns a
// press into a drag. Anything smaller counts as a tap.
const DragThresholdPx = 10

// gestureState is the tagged state of the recognizer. Exactly one concrete
// state is active at a time; states that need the initial touch point carry
// it, so a drag without an origin cannot be represented.
type gestureState interface {
	isGestureState()
}

// gestureIdle means no pointer is down
type gestureIdle struct{}

// gesturePressed means the pointer is down and movement has stayed below the
// drag threshold
type gesturePressed struct {
	touchStart   model.ScreenPosition
	widgetOrigin model.ScreenPosition
}

// gestureDragging means the press crossed the drag threshold
type gestureDragging struct {
	touchStart   model.ScreenPosition
	widgetOrigin model.ScreenPosition
}

func (gestureIdle) isGestureState()     {}
func (gesturePressed) isGestureState()  {}
func (gestureDragging) isGestureState() {}

// GestureEvents receives the high-level events the recognizer emits. Every
// callback is optional.
type GestureEvents struct {
	// OnDragStart fires on pointer down, before the gesture is classified.
	OnDragStart func(origin model.ScreenPosition)

	// OnDragMove fires for the threshold-crossing move and every move after
	// it, with the raw touch point and the widget's new position.
	OnDragMove func(touch, widgetPos model.ScreenPosition)

	// OnDragEnd fires when a drag is released: touch is the release point,
	// finalPos the widget's position at release.
	OnDragEnd func(touch, finalPos model.ScreenPosition, wasDragging bool)

	// OnTapped fires when the pointer is released without crossing the
	// threshold.
	OnTapped func()
}

// DragRecognizer turns a raw pointer stream (down, move, up, cancel) into
// the tap/drag grammar of the floating button. It is not safe for concurrent
// use; all calls must come from the UI event goroutine.
type DragRecognizer struct {
	state     gestureState
	events    GestureEvents
	threshold int
}

// NewDragRecognizer creates a recognizer in the idle state
func NewDragRecognizer(events GestureEvents) *DragRecognizer {
	return &DragRecognizer{
		state:     gestureIdle{},
		events:    events,
		threshold: DragThresholdPx,
	}
}

// PointerDown starts a gesture session. touch is the pointer location,
// origin the widget position at the moment of the press. A second down
// without a release restarts the session.
func (r *DragRecognizer) PointerDown(touch, origin model.ScreenPosition) {
	r.state = gesturePressed{touchStart: touch, widgetOrigin: origin}
	if r.events.OnDragStart != nil {
		r.events.OnDragStart(origin)
	}
}

// PointerMove advances the gesture. Movement below the threshold is
// ignored; the crossing move flips the session into a drag.
func (r *DragRecognizer) PointerMove(touch model.ScreenPosition) {
	switch st := r.state.(type) {
	case gesturePressed:
		dx := touch.X - st.touchStart.X
		dy := touch.Y - st.touchStart.Y
		if absInt(dx) < r.threshold && absInt(dy) < r.threshold {
			return
		}
		dragging := gestureDragging{touchStart: st.touchStart, widgetOrigin: st.widgetOrigin}
		r.state = dragging
		r.emitMove(dragging, touch)
	case gestureDragging:
		r.emitMove(st, touch)
	}
}

// PointerUp finishes the gesture: a press below the threshold emits tapped,
// a drag emits a single drag end carrying the release point and the
// widget's final position. A release without a session is ignored.
func (r *DragRecognizer) PointerUp(touch model.ScreenPosition) {
	switch st := r.state.(type) {
	case gesturePressed:
		r.state = gestureIdle{}
		if r.events.OnTapped != nil {
			r.events.OnTapped()
		}
	case gestureDragging:
		finalPos := st.widgetOrigin.Offset(touch.X-st.touchStart.X, touch.Y-st.touchStart.Y)
		r.state = gestureIdle{}
		if r.events.OnDragEnd != nil {
			r.events.OnDragEnd(touch, finalPos, true)
		}
	}
}

// PointerCancel aborts the gesture without emitting a tap or a drag end
func (r *DragRecognizer) PointerCancel() {
	r.state = gestureIdle{}
}

// Active reports whether a gesture session is in progress
func (r *DragRecognizer) Active() bool {
	_, idle := r.state.(gestureIdle)
	return !idle
}

// IsDragging reports whether the current session crossed the drag threshold
func (r *DragRecognizer) IsDragging() bool {
	_, ok := r.state.(gestureDragging)
	return ok
}

func (r *DragRecognizer) emitMove(st gestureDragging, touch model.ScreenPosition) {
	if r.events.OnDragMove == nil {
		return
	}
	widgetPos := st.widgetOrigin.Offset(touch.X-st.touchStart.X, touch.Y-st.touchStart.Y)
	r.events.OnDragMove(touch, widgetPos)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

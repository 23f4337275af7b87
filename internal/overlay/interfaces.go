package overlay

import (
	"fyne.io/fyne/v2"

	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// WindowSystem is the always-on-top surface the floating widgets attach to.
// The production implementation draws on the Fyne canvas overlay stack;
// tests substitute an in-memory fake. All methods must be called from the
// UI event goroutine.
type WindowSystem interface {
	// Attach places obj above all other content with its top-left corner at
	// pos. Attaching an already attached object is a no-op.
	Attach(obj fyne.CanvasObject, pos model.ScreenPosition) error

	// Detach removes obj from the overlay surface. Unknown objects are
	// ignored.
	Detach(obj fyne.CanvasObject)

	// ScreenSize returns the usable overlay area in pixels.
	ScreenSize() (width, height int)
}

// Store persists the floating button position between runs.
type Store interface {
	// Load returns the last saved position. ok is false on a fresh install,
	// before any position has been saved.
	Load() (pos model.ScreenPosition, ok bool, err error)

	// Save queues an asynchronous write of pos and returns immediately.
	Save(pos model.ScreenPosition)

	// SaveSync writes pos and blocks until the write is committed.
	SaveSync(pos model.ScreenPosition) error

	// Constrain clamps pos to the visible screen area.
	Constrain(pos model.ScreenPosition) model.ScreenPosition

	// Close stops the store after draining pending writes.
	Close()
}

// ForegroundPresence keeps the overlay process user-visible while it runs
type ForegroundPresence interface {
	// Promote makes the running process visible to the user.
	Promote() error

	// Demote withdraws the visible indicator.
	Demote()
}

// TranslatorLauncher opens the transient translator overlay when the
// floating button is tapped
type TranslatorLauncher interface {
	LaunchTranslator() error
}

// LifecycleDelegate receives the process host's lifecycle hooks. The
// production delegate is the Coordinator.
type LifecycleDelegate interface {
	Initialize()
	Start()
	Cleanup()
}

package overlay

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/jonboulle/clockwork"

	"github.com/djgmh9/Dicto-sub000/internal/broadcast"
	"github.com/djgmh9/Dicto-sub000/internal/config"
	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// LoadTimeout bounds how long Start waits for the stored position. When the
// load takes longer the button appears at the default position instead, so
// a slow store never leaves the user without a button.
const LoadTimeout = 1000 * time.Millisecond

// Coordinator wires the floating button, the trash zone and the position
// store together and owns every cross-component decision: startup, event
// routing, persistence, deletion and the restore signal. Widgets exist only
// between a successful Start and the following Cleanup, always as a pair.
type Coordinator struct {
	windows    WindowSystem
	store      Store
	settings   *config.Settings
	bus        *broadcast.Bus
	foreground ForegroundPresence
	launcher   TranslatorLauncher
	clock      clockwork.Clock

	onStopRequested func()

	mu          sync.Mutex
	initialized bool
	button      *OverlayButton
	trash       *TrashZone
	visibility  model.OverlayVisibility
	subToken    string
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewCoordinator creates a coordinator over the given collaborators. The
// clock is injected so the load timeout is testable.
func NewCoordinator(
	windows WindowSystem,
	store Store,
	settings *config.Settings,
	bus *broadcast.Bus,
	foreground ForegroundPresence,
	launcher TranslatorLauncher,
	clock clockwork.Clock,
) *Coordinator {
	return &Coordinator{
		windows:    windows,
		store:      store,
		settings:   settings,
		bus:        bus,
		foreground: foreground,
		launcher:   launcher,
		clock:      clock,
		visibility: model.OverlayHidden,
	}
}

// SetStopRequestCallback wires the handler invoked when dropping the button
// on the trash zone asks for the whole process to stop
func (c *Coordinator) SetStopRequestCallback(onStopRequested func()) {
	c.onStopRequested = onStopRequested
}

// Initialize binds the restore-signal subscription and the cancellation
// scope. Must be called before Start; calling it twice is a no-op.
func (c *Coordinator) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.subToken = c.bus.Subscribe(broadcast.ActionRestoreFloatingButton, c.handleRestoreSignal)
	c.initialized = true
	log.Printf("Overlay coordinator initialized")
}

// Start promotes the process to foreground visibility and shows the
// floating button. The stored position is loaded asynchronously and raced
// against LoadTimeout; the widgets are constructed once, inside whichever
// branch wins.
func (c *Coordinator) Start() {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		log.Printf("Overlay coordinator started before initialization")
		return
	}
	ctx := c.ctx
	c.mu.Unlock()

	if err := c.foreground.Promote(); err != nil {
		log.Printf("Failed to promote overlay process to foreground: %v", err)
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Recovered panic in overlay startup: %v", r)
			}
		}()
		c.resolveInitialPosition(ctx)
	}()
}

// Cleanup tears the overlay down: the live position is committed with a
// blocking save, the widget pair is destroyed, the restore subscription and
// the foreground promotion are dropped and the store is closed. A pending
// position load is abandoned without constructing widgets.
func (c *Coordinator) Cleanup() {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return
	}
	c.initialized = false
	cancel := c.cancel
	token := c.subToken
	c.mu.Unlock()

	cancel()
	c.bus.Unsubscribe(broadcast.ActionRestoreFloatingButton, token)
	c.teardownWidgets(true)
	c.store.Close()
	c.foreground.Demote()
	log.Printf("Overlay coordinator cleaned up")
}

// Visibility returns the current overlay visibility
func (c *Coordinator) Visibility() model.OverlayVisibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibility
}

// ShowButton re-attaches an existing floating button, for callers that want
// the button back without restarting the process
func (c *Coordinator) ShowButton() error {
	c.mu.Lock()
	button := c.button
	c.mu.Unlock()
	if button == nil {
		return ErrWindowAttach
	}
	if err := button.Restore(); err != nil {
		return err
	}
	c.setVisibility(model.OverlayVisible)
	return nil
}

// resolveInitialPosition races the store load against the timeout and hands
// the winning position to the UI goroutine.
func (c *Coordinator) resolveInitialPosition(ctx context.Context) {
	type loadResult struct {
		pos model.ScreenPosition
		ok  bool
		err error
	}

	resultCh := make(chan loadResult, 1)
	go func() {
		pos, ok, err := c.store.Load()
		resultCh <- loadResult{pos: pos, ok: ok, err: err}
	}()

	pos := model.DefaultButtonPosition()
	timer := c.clock.NewTimer(LoadTimeout)
	defer timer.Stop()

	select {
	case res := <-resultCh:
		switch {
		case res.err != nil:
			log.Printf("Failed to load button position, using default %s: %v", pos, res.err)
		case res.ok:
			pos = res.pos
		}
	case <-timer.Chan():
		log.Printf("Button position load timed out after %v, using default %s", LoadTimeout, pos)
	case <-ctx.Done():
		return
	}

	pos = c.store.Constrain(pos)

	fyne.Do(func() {
		c.attachWidgets(ctx, pos)
	})
}

// attachWidgets constructs the widget pair and shows the button. Runs on the
// UI goroutine; a coordinator cleaned up while the load was pending attaches
// nothing.
func (c *Coordinator) attachWidgets(ctx context.Context, pos model.ScreenPosition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil || !c.initialized {
		return
	}
	if c.button != nil {
		log.Printf("Floating button already constructed")
		return
	}

	c.trash = NewTrashZone(c.windows)
	button := NewOverlayButton(c.windows, pos)
	button.SetCallbacks(c.handleTapped, c.handleDragStart, c.handleDragMove, c.handleDragEnd)
	if err := button.Show(); err != nil {
		log.Printf("Failed to show floating button: %v", err)
		c.trash = nil
		return
	}
	c.button = button
	c.visibility = model.OverlayVisible
	log.Printf("Floating button shown at %s", pos)
}

// handleTapped hides the overlay widgets and opens the translator. When the
// launch fails the button is restored so the user keeps a way to retry.
func (c *Coordinator) handleTapped() {
	c.mu.Lock()
	button, trash := c.button, c.trash
	c.mu.Unlock()
	if button == nil {
		return
	}

	button.Hide()
	trash.Hide()
	c.setVisibility(model.OverlayHidden)

	if err := c.launcher.LaunchTranslator(); err != nil {
		log.Printf("Failed to launch translator overlay: %v", err)
		if rerr := button.Restore(); rerr != nil {
			log.Printf("Failed to restore floating button after launch failure: %v", rerr)
			return
		}
		c.setVisibility(model.OverlayVisible)
	}
}

// handleDragStart shows the trash zone for the duration of the gesture
func (c *Coordinator) handleDragStart(model.ScreenPosition) {
	c.mu.Lock()
	trash := c.trash
	c.mu.Unlock()
	if trash == nil {
		return
	}
	if err := trash.Show(); err != nil {
		log.Printf("Failed to show trash zone: %v", err)
	}
}

// handleDragMove drives the trash zone proximity highlight with the raw
// touch point
func (c *Coordinator) handleDragMove(touch, _ model.ScreenPosition) {
	c.mu.Lock()
	trash := c.trash
	c.mu.Unlock()
	if trash == nil {
		return
	}
	trash.UpdateVisualState(touch.X, touch.Y)
}

// handleDragEnd finishes a gesture: a release near the trash zone deletes
// the button and stops the process without saving; any other drop persists
// the raw position asynchronously. Loaded values are constrained, drop
// points are saved as-is.
func (c *Coordinator) handleDragEnd(touch, finalPos model.ScreenPosition, wasDragging bool) {
	c.mu.Lock()
	trash := c.trash
	c.mu.Unlock()
	if trash == nil {
		return
	}

	if wasDragging && trash.IsNear(touch.X, touch.Y) {
		log.Printf("Floating button dropped on trash zone, stopping overlay")
		c.teardownWidgets(false)
		c.requestStop()
		return
	}

	if wasDragging {
		c.store.Save(finalPos)
	}
	trash.Hide()
}

// handleRestoreSignal re-shows the button after the translator overlay
// closes
func (c *Coordinator) handleRestoreSignal() {
	c.mu.Lock()
	button := c.button
	c.mu.Unlock()
	if button == nil {
		return
	}

	fyne.Do(func() {
		if err := button.Restore(); err != nil {
			log.Printf("Failed to restore floating button: %v", err)
			return
		}
		c.setVisibility(model.OverlayVisible)
	})
}

// teardownWidgets destroys the widget pair. When persist is true the live
// position is committed synchronously first; the deletion path skips the
// save entirely.
func (c *Coordinator) teardownWidgets(persist bool) {
	c.mu.Lock()
	button, trash := c.button, c.trash
	c.button, c.trash = nil, nil
	c.visibility = model.OverlayHidden
	c.mu.Unlock()
	if button == nil {
		return
	}

	if persist {
		pos := button.CurrentPosition()
		if err := c.store.SaveSync(pos); err != nil {
			log.Printf("Failed to save button position at teardown: %v", err)
		}
	}

	fyne.Do(func() {
		trash.Hide()
		button.Destroy()
	})
}

func (c *Coordinator) requestStop() {
	c.settings.SetFloatingWindowEnabled(false)
	if c.onStopRequested == nil {
		log.Printf("No stop handler registered for trash deletion")
		return
	}
	c.onStopRequested()
}

func (c *Coordinator) setVisibility(v model.OverlayVisibility) {
	c.mu.Lock()
	c.visibility = v
	c.mu.Unlock()
}

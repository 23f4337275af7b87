package overlay

import (
	"fmt"
	"log"
	"sync"

	"github.com/djgmh9/Dicto-sub000/internal/config"
	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// LauncherFacade is the surface the host application uses to control the
// floating button subsystem: start, stop, re-show, permission checks. It
// owns the process supervisor that applies the restart policy after an
// abnormal exit.
type LauncherFacade struct {
	settings        *config.Settings
	canDrawOverlays func() bool
	build           func() (*ProcessHost, *Coordinator)

	mu          sync.Mutex
	host        *ProcessHost
	coordinator *Coordinator
	policy      model.RestartPolicy
	onStopped   func()
}

// NewLauncherFacade creates the facade. build constructs a fresh host and
// coordinator pair for every start, since a destroyed process cannot be
// reused. canDrawOverlays reports the OS overlay permission.
func NewLauncherFacade(settings *config.Settings, build func() (*ProcessHost, *Coordinator), canDrawOverlays func() bool) *LauncherFacade {
	return &LauncherFacade{
		settings:        settings,
		canDrawOverlays: canDrawOverlays,
		build:           build,
		policy:          model.RestartNever,
	}
}

// SetStoppedCallback registers a callback invoked after the overlay process
// has exited and will not be restarted. The UI uses it to keep its toggle
// in sync when the process stops from the inside, e.g. a trash deletion.
func (f *LauncherFacade) SetStoppedCallback(callback func()) {
	f.mu.Lock()
	f.onStopped = callback
	f.mu.Unlock()
}

// IsPermissionGranted reports whether the OS allows drawing over other apps
func (f *LauncherFacade) IsPermissionGranted() bool {
	return f.canDrawOverlays()
}

// IsRunning reports whether the overlay process is currently active
func (f *LauncherFacade) IsRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.host != nil && f.host.State().IsRunning()
}

// StartFloatingWindow starts the background overlay process and records the
// enabled flag so the subsystem resumes on the next app run. Without the
// overlay permission nothing is started and the caller is expected to send
// the user to the permission settings.
func (f *LauncherFacade) StartFloatingWindow() error {
	if !f.canDrawOverlays() {
		log.Printf("Cannot start floating window: %v", ErrPermissionDenied)
		return fmt.Errorf("start floating window: %w", ErrPermissionDenied)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.host != nil && f.host.State().IsRunning() {
		log.Printf("Floating window already running")
		return nil
	}

	host, coordinator := f.build()
	coordinator.SetStopRequestCallback(host.Destroy)
	host.SetExitCallback(func(abnormal bool) {
		f.handleProcessExit(host, abnormal)
	})

	if err := host.Create(); err != nil {
		return fmt.Errorf("create overlay process: %w", err)
	}
	policy, err := host.Start()
	if err != nil {
		host.Destroy()
		return fmt.Errorf("start overlay process: %w", err)
	}

	f.host = host
	f.coordinator = coordinator
	f.policy = policy
	f.settings.SetFloatingWindowEnabled(true)
	log.Printf("Floating window started with policy %s", policy)
	return nil
}

// StopFloatingWindow stops the overlay process and clears the enabled flag.
// Idempotent; stopping a stopped subsystem does nothing.
func (f *LauncherFacade) StopFloatingWindow() {
	// Clear the flag first so an in-flight abnormal exit cannot restart
	f.settings.SetFloatingWindowEnabled(false)

	f.mu.Lock()
	host := f.host
	f.host = nil
	f.coordinator = nil
	f.mu.Unlock()

	if host == nil {
		return
	}
	host.Destroy()
	log.Printf("Floating window stopped")
}

// Shutdown stops the overlay process without touching the enabled flag, so
// the subsystem resumes on the next app run. This is the app exit path;
// user-initiated stops go through StopFloatingWindow.
func (f *LauncherFacade) Shutdown() {
	f.mu.Lock()
	host := f.host
	f.host = nil
	f.coordinator = nil
	f.mu.Unlock()

	if host == nil {
		return
	}
	host.Destroy()
	log.Printf("Floating window shut down for app exit")
}

// ShowFloatingButton re-shows the button of a running process; when the
// process is not running it falls back to a full start.
func (f *LauncherFacade) ShowFloatingButton() error {
	f.mu.Lock()
	host := f.host
	coordinator := f.coordinator
	f.mu.Unlock()

	if host == nil || !host.State().IsRunning() {
		return f.StartFloatingWindow()
	}
	return coordinator.ShowButton()
}

// handleProcessExit is the supervisor: an abnormal exit of the current
// process is restarted while the subsystem is still enabled. Exits that are
// not restarted are reported through the stopped callback.
func (f *LauncherFacade) handleProcessExit(host *ProcessHost, abnormal bool) {
	f.mu.Lock()
	if f.host == host {
		f.host = nil
		f.coordinator = nil
	}
	policy := f.policy
	onStopped := f.onStopped
	f.mu.Unlock()

	notify := func() {
		if onStopped != nil {
			onStopped()
		}
	}

	if !abnormal {
		notify()
		return
	}
	if policy != model.RestartAlways {
		log.Printf("Overlay process died, restart policy %s keeps it stopped", policy)
		notify()
		return
	}
	if !f.settings.GetFloatingWindowEnabled() {
		log.Printf("Overlay process died while disabled, not restarting")
		notify()
		return
	}

	log.Printf("Overlay process died, restarting")
	go func() {
		if err := f.StartFloatingWindow(); err != nil {
			log.Printf("Failed to restart overlay process: %v", err)
		}
	}()
}

package overlay

import (
	"fmt"
	"log"
	"sync"

	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// ProcessHost is the container for the long-running overlay process. It owns
// the lifecycle state machine and delegates the actual behavior to its
// LifecycleDelegate. A host is single-use: after Destroy it stays in
// NotRunning and a new host must be created for the next run.
type ProcessHost struct {
	delegate LifecycleDelegate

	mu       sync.Mutex
	state    model.ProcessState
	abnormal bool

	// onExit is notified once the host reaches NotRunning; abnormal is true
	// when the stop was caused by a recovered panic.
	onExit func(abnormal bool)
}

// NewProcessHost creates a host in the NotRunning state
func NewProcessHost(delegate LifecycleDelegate) *ProcessHost {
	return &ProcessHost{
		delegate: delegate,
		state:    model.ProcessNotRunning,
	}
}

// SetExitCallback wires the supervisor's exit notification. Must be set
// before Create.
func (h *ProcessHost) SetExitCallback(onExit func(abnormal bool)) {
	h.onExit = onExit
}

// State returns the current lifecycle state
func (h *ProcessHost) State() model.ProcessState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Create brings the process container up and initializes the delegate.
// Legal only from NotRunning.
func (h *ProcessHost) Create() error {
	if err := h.transition(model.ProcessStarting); err != nil {
		return err
	}
	log.Printf("Overlay process created")
	h.guard("initialize", h.delegate.Initialize)
	return nil
}

// Start begins foreground operation and returns the restart directive the
// supervisor should apply if the process dies. Legal only from Starting.
func (h *ProcessHost) Start() (model.RestartPolicy, error) {
	if err := h.transition(model.ProcessForegroundActive); err != nil {
		return model.RestartNever, err
	}
	log.Printf("Overlay process entering foreground")
	h.guard("start", h.delegate.Start)
	return model.RestartAlways, nil
}

// Destroy tears the process down through Stopping to NotRunning. Safe to
// call in any state; a host that is not running is left untouched.
func (h *ProcessHost) Destroy() {
	h.mu.Lock()
	if !h.state.IsRunning() {
		h.mu.Unlock()
		return
	}
	h.state = model.ProcessStopping
	abnormal := h.abnormal
	h.mu.Unlock()
	log.Printf("Overlay process stopping")

	h.guard("cleanup", h.delegate.Cleanup)

	h.mu.Lock()
	h.state = model.ProcessNotRunning
	h.mu.Unlock()
	log.Printf("Overlay process stopped")

	if h.onExit != nil {
		h.onExit(abnormal)
	}
}

// transition validates and applies a lifecycle step.
func (h *ProcessHost) transition(next model.ProcessState) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.state.CanTransitionTo(next) {
		return fmt.Errorf("illegal overlay process transition %s -> %s", h.state, next)
	}
	h.state = next
	return nil
}

// guard runs a delegate hook and converts a panic into an abnormal stop
// instead of crashing the app.
func (h *ProcessHost) guard(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered panic in overlay process %s: %v", name, r)
			h.mu.Lock()
			h.abnormal = true
			alreadyStopping := h.state == model.ProcessStopping || h.state == model.ProcessNotRunning
			h.mu.Unlock()
			if !alreadyStopping {
				go h.Destroy()
			}
		}
	}()
	fn()
}

package model

// ProcessState represents the lifecycle state of the background overlay process
type ProcessState string

const (
	// ProcessNotRunning means the process container does not exist
	ProcessNotRunning ProcessState = "NotRunning"

	// ProcessStarting means the process has been created but is not yet
	// operating in the foreground
	ProcessStarting ProcessState = "Starting"

	// ProcessForegroundActive means the process runs with a user-visible
	// foreground indicator
	ProcessForegroundActive ProcessState = "ForegroundActive"

	// ProcessStopping means the process is tearing down
	ProcessStopping ProcessState = "Stopping"
)

// String returns the string representation of ProcessState
func (ps ProcessState) String() string {
	return string(ps)
}

// IsRunning returns true if the process is in an active state
func (ps ProcessState) IsRunning() bool {
	return ps == ProcessStarting || ps == ProcessForegroundActive
}

// CanTransitionTo reports whether moving to next is a legal lifecycle step.
// The lifecycle only moves forward; the single loop back is
// Stopping -> NotRunning, after which a fresh process must be created.
func (ps ProcessState) CanTransitionTo(next ProcessState) bool {
	switch ps {
	case ProcessNotRunning:
		return next == ProcessStarting
	case ProcessStarting:
		return next == ProcessForegroundActive || next == ProcessStopping
	case ProcessForegroundActive:
		return next == ProcessStopping
	case ProcessStopping:
		return next == ProcessNotRunning
	default:
		return false
	}
}

// RestartPolicy tells the supervisor what to do when the overlay process
// dies without an orderly stop.
type RestartPolicy int

const (
	// RestartNever leaves the process stopped after it dies
	RestartNever RestartPolicy = iota

	// RestartAlways recreates the process after an abnormal exit
	RestartAlways
)

// String returns the string representation of RestartPolicy
func (rp RestartPolicy) String() string {
	if rp == RestartAlways {
		return "RestartAlways"
	}
	return "RestartNever"
}

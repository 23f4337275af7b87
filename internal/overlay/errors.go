package overlay

import "errors"

// Failure categories of the floating button subsystem. Every one of them
// degrades to "button not visible" or "default position used"; none may
// crash the app.
var (
	// ErrPermissionDenied means the OS has not granted drawing over other apps
	ErrPermissionDenied = errors.New("overlay permission not granted")

	// ErrWindowAttach means a surface could not be attached to the overlay
	// window system
	ErrWindowAttach = errors.New("overlay window attach failed")

	// ErrStoreIO means the position store could not be read or written
	ErrStoreIO = errors.New("position store I/O failed")

	// ErrLaunchFailure means the transient translator overlay failed to open
	ErrLaunchFailure = errors.New("translator overlay launch failed")
)

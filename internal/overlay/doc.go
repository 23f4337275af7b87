package overlay

// Package overlay implements the floating translate button subsystem: an
// always-on-top draggable button, the trash zone it can be dropped on, the
// coordinator that ties gestures to persistence and the translator, and the
// process host that gives the whole thing a service-style lifecycle. The
// package never crashes the app on platform failures; every boundary error
// degrades to a logged no-op.

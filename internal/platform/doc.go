package platform

// Package platform contains OS/platform integration glue: Android device
// detection, the draw-over-apps permission query via the appops CLI, and
// launching the system permission settings screen.

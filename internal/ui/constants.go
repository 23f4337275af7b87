package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
)

// Text fragments
const (
	ResultPlaceholder = "…"
)

// Layout sizing
const (
	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	// Mobile button sizing
	MobileButtonWidth float32 = 96
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 400
	SettingsDialogHeight float32 = 440
)

// Status line behavior
const (
	StatusAutoHide = 5 * time.Second
)

// Delays
const (
	AutoStartDelay   = 500 * time.Millisecond
	TranslateTimeout = 10 * time.Second
)

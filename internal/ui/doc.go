package ui

// Package ui contains the Fyne-based user interface for the application.
// It wires the translation pipeline and the floating button subsystem to the
// root window, and renders the settings dialog and the transient full-screen
// translator. All UI strings are localized via Localization.

package model

// Package model defines domain data structures used across the app: screen
// positions for the floating button, overlay visibility, and the background
// process lifecycle enums. Structures are designed for direct binding in the
// UI and explicit state transitions.

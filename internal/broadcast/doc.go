package broadcast

// Package broadcast provides the in-process signal bus that decouples the
// transient translator overlay from the floating button coordinator. It
// mirrors system broadcast semantics: named actions, fan-out to every
// subscriber, no delivery to subscribers registered after the publish.

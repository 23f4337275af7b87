package translate

// Package translate defines the translation pipeline collaborators
// (translator, speech synthesis, vocabulary, clipboard watching) and ships
// a static dictionary translator that backs the UI when no real pipeline
// is wired in.

package translate

import (
	"context"
)

// Result holds one completed translation.
type Result struct {
	SourceText string
	SourceLang string
	TargetLang string
	Translated string
}

// Translator defines the interface for translation backends.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*Result, error)
}

// SpeechSynthesizer voices a translation out loud.
type SpeechSynthesizer interface {
	Speak(ctx context.Context, text, lang string) error
	Stop()
}

// VocabularyEntry is a saved word pair in the user's vocabulary.
type VocabularyEntry struct {
	Word        string
	Translation string
	SourceLang  string
	TargetLang  string
}

// VocabularyStore persists vocabulary entries between runs.
type VocabularyStore interface {
	Add(entry VocabularyEntry) error
	All() ([]VocabularyEntry, error)
	Remove(word string) error
}

// ClipboardWatcher reports clipboard changes so copied text can be
// translated without leaving the current app.
type ClipboardWatcher interface {
	Start(ctx context.Context, onCopy func(text string)) error
	Stop()
}

package config

import (
	"fyne.io/fyne/v2"

	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyFloatingWindowEnabled = "floating_window_enabled"
	KeyFloatingButtonX       = "floating_button_x"
	KeyFloatingButtonY       = "floating_button_y"
	KeySourceLanguage        = "source_language"
	KeyTargetLanguage        = "target_language"
	KeyUILanguage            = "ui_language"
)

// Default values
const (
	DefaultFloatingWindowEnabled = false
	DefaultSourceLanguage        = "en"
	DefaultTargetLanguage        = "ru"
	DefaultUILanguage            = "system"
)

// positionUnset marks a coordinate key that has never been written. Saved
// coordinates can be negative (the button may hang half off the left edge),
// so the sentinel sits far outside any real screen range.
const positionUnset = -1 << 30

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFloatingWindowEnabled returns whether the floating button subsystem
// should be running
func (s *Settings) GetFloatingWindowEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyFloatingWindowEnabled, DefaultFloatingWindowEnabled)
}

// SetFloatingWindowEnabled records whether the floating button subsystem
// should be running
func (s *Settings) SetFloatingWindowEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyFloatingWindowEnabled, enabled)
}

// HasSavedButtonPosition reports whether a floating button position has ever
// been saved. The saved origin (0, 0) is a legal position, so absence is
// tracked with a sentinel instead of the zero value.
func (s *Settings) HasSavedButtonPosition() bool {
	prefs := s.app.Preferences()
	x := prefs.IntWithFallback(KeyFloatingButtonX, positionUnset)
	y := prefs.IntWithFallback(KeyFloatingButtonY, positionUnset)
	return x != positionUnset && y != positionUnset
}

// GetFloatingButtonPosition returns the last saved button position, or the
// default position when none has been saved yet
func (s *Settings) GetFloatingButtonPosition() model.ScreenPosition {
	if !s.HasSavedButtonPosition() {
		return model.DefaultButtonPosition()
	}
	prefs := s.app.Preferences()
	return model.ScreenPosition{
		X: prefs.Int(KeyFloatingButtonX),
		Y: prefs.Int(KeyFloatingButtonY),
	}
}

// SetFloatingButtonPosition saves the button position for the next run
func (s *Settings) SetFloatingButtonPosition(pos model.ScreenPosition) {
	prefs := s.app.Preferences()
	prefs.SetInt(KeyFloatingButtonX, pos.X)
	prefs.SetInt(KeyFloatingButtonY, pos.Y)
}

// GetSourceLanguage returns the language translated from
func (s *Settings) GetSourceLanguage() string {
	lang := s.app.Preferences().String(KeySourceLanguage)
	if lang == "" {
		s.SetSourceLanguage(DefaultSourceLanguage)
		return DefaultSourceLanguage
	}
	return lang
}

// SetSourceLanguage sets the language translated from
func (s *Settings) SetSourceLanguage(lang string) {
	s.app.Preferences().SetString(KeySourceLanguage, lang)
}

// GetTargetLanguage returns the language translated to
func (s *Settings) GetTargetLanguage() string {
	lang := s.app.Preferences().String(KeyTargetLanguage)
	if lang == "" {
		s.SetTargetLanguage(DefaultTargetLanguage)
		return DefaultTargetLanguage
	}
	return lang
}

// SetTargetLanguage sets the language translated to
func (s *Settings) SetTargetLanguage(lang string) {
	s.app.Preferences().SetString(KeyTargetLanguage, lang)
}

// GetUILanguage returns the interface language
func (s *Settings) GetUILanguage() string {
	lang := s.app.Preferences().String(KeyUILanguage)
	if lang == "" {
		s.SetUILanguage(DefaultUILanguage)
		return DefaultUILanguage
	}
	return lang
}

// SetUILanguage sets the interface language
func (s *Settings) SetUILanguage(lang string) {
	s.app.Preferences().SetString(KeyUILanguage, lang)
}

// GetLanguageOptions returns available translation language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
		"es": "Español",
		"de": "Deutsch",
	}
}

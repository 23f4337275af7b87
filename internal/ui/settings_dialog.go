package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/djgmh9/Dicto-sub000/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	sourceSelect  *widget.Select
	targetSelect  *widget.Select
	uiLangSelect  *widget.Select
	floatingCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a
// confirmed save so the caller can apply the new settings.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, window, localization, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Translation language pair
	translationLangs := sd.languageCodes(sd.settings.GetLanguageOptions())
	sd.sourceSelect = widget.NewSelect(translationLangs, nil)
	sd.targetSelect = widget.NewSelect(translationLangs, nil)

	// Interface language selection
	uiLangs := sd.languageCodes(sd.localization.GetAvailableLanguages())
	sd.uiLangSelect = widget.NewSelect(uiLangs, nil)
	sd.uiLangSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	// Floating button toggle
	sd.floatingCheck = widget.NewCheck(sd.localization.GetText(KeyFloatingButton), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyTranslationSection)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeySourceLanguage)+":"),
		sd.sourceSelect,

		widget.NewLabel(sd.localization.GetText(KeyTargetLanguage)+":"),
		sd.targetSelect,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.uiLangSelect,

		sd.floatingCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// languageCodes returns the sorted option codes of a language map
func (sd *SettingsDialog) languageCodes(options map[string]string) []string {
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.sourceSelect.SetSelected(sd.settings.GetSourceLanguage())
	sd.targetSelect.SetSelected(sd.settings.GetTargetLanguage())
	sd.uiLangSelect.SetSelected(sd.settings.GetUILanguage())
	sd.floatingCheck.SetChecked(sd.settings.GetFloatingWindowEnabled())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save translation language pair
	if sd.sourceSelect.Selected != "" {
		sd.settings.SetSourceLanguage(sd.sourceSelect.Selected)
	}
	if sd.targetSelect.Selected != "" {
		sd.settings.SetTargetLanguage(sd.targetSelect.Selected)
	}

	// Save interface language
	if sd.uiLangSelect.Selected != "" {
		sd.settings.SetUILanguage(sd.uiLangSelect.Selected)
	}

	// Save floating button toggle; the caller reconciles the running state
	sd.settings.SetFloatingWindowEnabled(sd.floatingCheck.Checked)

	// Show confirmation
	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

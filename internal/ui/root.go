package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"

	"github.com/djgmh9/Dicto-sub000/internal/broadcast"
	"github.com/djgmh9/Dicto-sub000/internal/config"
	"github.com/djgmh9/Dicto-sub000/internal/overlay"
	"github.com/djgmh9/Dicto-sub000/internal/platform"
	"github.com/djgmh9/Dicto-sub000/internal/translate"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI
	bus          *broadcast.Bus
	translator   translate.Translator
	launcher     *overlay.LauncherFacade
	clock        clockwork.Clock

	// UI components
	sourceEntry   *widget.Entry
	translateBtn  *widget.Button
	resultLabel   *widget.Label
	floatingCheck *widget.Check

	// Status panel
	statusContainer *fyne.Container
	statusLabel     *widget.Label

	// Last completed translation, shown by the transient overlay
	lastResult *translate.Result
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, translator translate.Translator, clock clockwork.Clock) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetUILanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobileUI:     NewMobileUI(app),
		bus:          broadcast.NewBus(),
		translator:   translator,
		clock:        clock,
	}

	// The facade builds a fresh overlay process for every start over this
	// window's canvas
	ui.launcher = overlay.NewLauncherFacade(settings, ui.buildOverlayProcess, platform.CanDrawOverlays)
	ui.launcher.SetStoppedCallback(func() {
		fyne.Do(ui.syncFloatingCheck)
	})

	log.Printf("RootUI initialized with translator: %v", ui.translator != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Stop the overlay process before exit so the position is flushed; the
	// enabled flag survives for the next run
	window.SetCloseIntercept(func() {
		ui.launcher.Shutdown()
		window.Close()
	})

	ui.resumeFloatingButton()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create source text entry
	ui.sourceEntry = ui.mobileUI.CreateMobileEntry(ui.localization.GetText(KeyEnterText))
	// Translate when the user presses Enter in the text field
	ui.sourceEntry.OnSubmitted = func(string) {
		ui.onTranslateClick()
	}

	// Create translate button
	ui.translateBtn = ui.mobileUI.CreateMobileButton(ui.localization.GetText(KeyTranslate), ui.onTranslateClick)

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	// Create top panel (input row) with logo
	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), ui.translateBtn, ui.sourceEntry)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), ui.translateBtn, ui.sourceEntry)
	}

	// Create status panel under the input row (hidden by default)
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignLeading
	ui.statusContainer = container.NewHBox(container.NewPadded(ui.statusLabel))
	ui.statusContainer.Hide()

	// Combine input row and status panel at the top
	topCombined := container.NewVBox(topPanel, ui.statusContainer)

	// Create translation result area
	ui.resultLabel = widget.NewLabel(ResultPlaceholder)
	ui.resultLabel.Wrapping = fyne.TextWrapWord
	ui.resultLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Floating button toggle, pre-set from the saved flag so the callback
	// does not fire during setup
	ui.floatingCheck = widget.NewCheck(ui.localization.GetText(KeyFloatingButton), nil)
	ui.floatingCheck.Checked = ui.settings.GetFloatingWindowEnabled()
	ui.floatingCheck.OnChanged = ui.onToggleFloating

	// Create main layout
	content := container.NewBorder(
		topCombined,      // top
		ui.floatingCheck, // bottom
		nil,              // left
		nil,              // right
		container.NewPadded(ui.resultLabel), // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles interface language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetUILanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	ui.sourceEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterText))
	ui.translateBtn.SetText(ui.localization.GetText(KeyTranslate))
	ui.floatingCheck.Text = ui.localization.GetText(KeyFloatingButton)
	ui.floatingCheck.Refresh()
}

// onTranslateClick handles the translate button click
func (ui *RootUI) onTranslateClick() {
	text := strings.TrimSpace(ui.sourceEntry.Text)
	if text == "" {
		ui.showStatus(ui.localization.GetText(KeyPleaseEnterText))
		return
	}

	sourceLang := ui.settings.GetSourceLanguage()
	targetLang := ui.settings.GetTargetLanguage()
	log.Printf("Translating %q from %s to %s", text, sourceLang, targetLang)

	// Translate in background
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), TranslateTimeout)
		defer cancel()

		result, err := ui.translator.Translate(ctx, text, sourceLang, targetLang)

		// Update UI in main thread
		fyne.Do(func() {
			if err != nil {
				log.Printf("Translation failed: %v", err)
				ui.showStatus(ui.localization.GetText(KeyTranslationFailed) + ": " + err.Error())
				return
			}

			ui.lastResult = result
			ui.resultLabel.SetText(result.Translated)
		})
	}()
}

// showStatus displays a transient message in the status panel under the
// input row. The message hides itself unless a newer one replaced it.
func (ui *RootUI) showStatus(message string) {
	if ui.statusLabel == nil || ui.statusContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.statusLabel.SetText(message)
		ui.statusContainer.Show()
		ui.statusContainer.Refresh()
	})

	// Auto-hide after configured time
	go func() {
		ui.clock.Sleep(StatusAutoHide)
		fyne.Do(func() {
			if ui.statusLabel.Text == message {
				ui.hideStatus()
			}
		})
	}()
}

// hideStatus hides the status panel
func (ui *RootUI) hideStatus() {
	if ui.statusContainer == nil {
		return
	}
	ui.statusContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies freshly saved settings to the running app
func (ui *RootUI) onSettingsSaved() {
	// Apply the interface language
	ui.localization.SetLanguage(ui.settings.GetUILanguage())
	ui.refreshUITexts()
	ui.createMenu()

	// Reconcile the floating button with the saved toggle
	enabled := ui.settings.GetFloatingWindowEnabled()
	if enabled && !ui.launcher.IsRunning() {
		ui.startFloatingButton()
	} else if !enabled && ui.launcher.IsRunning() {
		ui.launcher.StopFloatingWindow()
	}
	ui.syncFloatingCheck()
}

// onToggleFloating handles the floating button toggle
func (ui *RootUI) onToggleFloating(checked bool) {
	if checked {
		ui.startFloatingButton()
		return
	}

	wasRunning := ui.launcher.IsRunning()
	ui.launcher.StopFloatingWindow()
	if wasRunning {
		ui.showStatus(ui.localization.GetText(KeyFloatingStopped))
	}
}

// startFloatingButton starts the subsystem and reflects failures back into
// the toggle and the enabled flag
func (ui *RootUI) startFloatingButton() {
	err := ui.launcher.StartFloatingWindow()
	if err == nil {
		ui.showStatus(ui.localization.GetText(KeyFloatingStarted))
		ui.syncFloatingCheck()
		return
	}

	log.Printf("Floating button start failed: %v", err)
	if errors.Is(err, overlay.ErrPermissionDenied) {
		ui.showStatus(ui.localization.GetText(KeyPermissionNeeded))
		if reqErr := platform.RequestOverlayPermission(); reqErr != nil {
			log.Printf("Failed to open permission settings: %v", reqErr)
		}
	} else {
		ui.showStatus(ui.localization.GetText(KeyFloatingFailed) + ": " + err.Error())
	}

	ui.settings.SetFloatingWindowEnabled(false)
	ui.syncFloatingCheck()
}

// syncFloatingCheck aligns the toggle with the actual subsystem state
func (ui *RootUI) syncFloatingCheck() {
	if ui.floatingCheck == nil {
		return
	}
	running := ui.launcher.IsRunning()
	if ui.floatingCheck.Checked != running {
		ui.floatingCheck.SetChecked(running)
	}
}

// resumeFloatingButton restarts the subsystem on app start when the saved
// toggle says it was running last time
func (ui *RootUI) resumeFloatingButton() {
	if !ui.settings.GetFloatingWindowEnabled() {
		return
	}

	log.Printf("Floating button was enabled last run, resuming")
	go func() {
		// Give the window a moment to build its canvas
		ui.clock.Sleep(AutoStartDelay)
		fyne.Do(ui.startFloatingButton)
	}()
}

// LaunchTranslator opens the transient full-screen translator. The floating
// button is hidden while it is up and restored when it closes.
func (ui *RootUI) LaunchTranslator() error {
	translatorOverlay, err := NewTranslatorOverlay(ui.window.Canvas(), ui.bus, ui.lastResult, ui.localization, ui.mobileUI)
	if err != nil {
		return err
	}

	translatorOverlay.Show()
	return nil
}

// buildOverlayProcess constructs a fresh overlay process over this window's
// canvas. Called by the facade on every start.
func (ui *RootUI) buildOverlayProcess() (*overlay.ProcessHost, *overlay.Coordinator) {
	windows := overlay.NewCanvasWindowSystem(ui.window.Canvas())
	store := overlay.NewPositionStore(ui.settings, windows, overlay.ButtonSizePx)
	coordinator := overlay.NewCoordinator(
		windows,
		store,
		ui.settings,
		ui.bus,
		newNotificationPresence(ui.app, ui.localization),
		ui,
		ui.clock,
	)
	return overlay.NewProcessHost(coordinator), coordinator
}

package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/djgmh9/Dicto-sub000/internal/broadcast"
	"github.com/djgmh9/Dicto-sub000/internal/overlay"
	"github.com/djgmh9/Dicto-sub000/internal/translate"
)

// TranslatorOverlay is the transient full-screen translator opened by the
// floating button. Closing it publishes the restore signal that brings the
// floating button back.
type TranslatorOverlay struct {
	popup  *widget.PopUp
	canvas fyne.Canvas
	bus    *broadcast.Bus
}

// NewTranslatorOverlay builds the overlay over the given canvas. The result
// may be nil when nothing has been translated yet.
func NewTranslatorOverlay(canvas fyne.Canvas, bus *broadcast.Bus, result *translate.Result, localization *Localization, mobileUI *MobileUI) (*TranslatorOverlay, error) {
	if canvas == nil {
		return nil, fmt.Errorf("translator overlay needs a canvas: %w", overlay.ErrLaunchFailure)
	}

	to := &TranslatorOverlay{canvas: canvas, bus: bus}

	title := widget.NewLabel(localization.GetText(KeyTranslation))
	title.TextStyle = fyne.TextStyle{Bold: true}

	closeBtn := widget.NewButton(IconClose, to.Close)
	closeBtn.Importance = widget.LowImportance
	if mobileUI.IsMobileDevice() {
		closeBtn.Resize(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize))
	}

	sourceLabel := widget.NewLabel(localization.GetText(KeyNothingTranslated))
	sourceLabel.Wrapping = fyne.TextWrapWord

	translatedLabel := widget.NewLabel("")
	translatedLabel.Wrapping = fyne.TextWrapWord
	translatedLabel.TextStyle = fyne.TextStyle{Bold: true}

	if result != nil {
		sourceLabel.SetText(result.SourceText)
		translatedLabel.SetText(result.Translated)
	}

	header := container.NewBorder(nil, nil, title, closeBtn)
	body := container.NewVBox(sourceLabel, widget.NewSeparator(), translatedLabel)
	content := container.NewBorder(header, nil, nil, nil, container.NewPadded(body))

	to.popup = widget.NewModalPopUp(content, canvas)
	return to, nil
}

// Show displays the overlay sized to the full canvas
func (to *TranslatorOverlay) Show() {
	size := to.canvas.Size()
	to.popup.Resize(size)
	to.popup.Move(fyne.NewPos(0, 0))
	to.popup.Show()
	log.Printf("Translator overlay shown at %.0fx%.0f", size.Width, size.Height)
}

// Close hides the overlay and signals the floating button to come back
func (to *TranslatorOverlay) Close() {
	to.popup.Hide()
	to.bus.Publish(broadcast.ActionRestoreFloatingButton)
}

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"

	"github.com/djgmh9/Dicto-sub000/internal/translate"
	"github.com/djgmh9/Dicto-sub000/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("io.github.djgmh9.dicto")
	myWindow := myApp.NewWindow("Dicto")
	myWindow.Resize(fyne.NewSize(480, 640))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, translate.NewStaticTranslator(), clockwork.NewRealClock())

	// Show and run
	myWindow.ShowAndRun()
}

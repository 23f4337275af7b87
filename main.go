package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"

	"github.com/djgmh9/Dicto-sub000/internal/platform"
	"github.com/djgmh9/Dicto-sub000/internal/translate"
	"github.com/djgmh9/Dicto-sub000/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	// AppID doubles as the Android package name the permission glue probes
	AppID   = platform.AppPackage
	AppName = "Dicto"

	WindowWidth  = 480
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Dicto v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	translator := translate.NewStaticTranslator()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, translator, clockwork.NewRealClock())

	// Show and run
	myWindow.ShowAndRun()
}

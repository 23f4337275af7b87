package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "dicto.png"
)

// LoadLogoResource loads the app logo from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

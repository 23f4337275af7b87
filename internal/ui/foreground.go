package ui

import (
	"log"

	"fyne.io/fyne/v2"
)

// notificationPresence keeps the floating button subsystem visible to the
// user while it runs in the background, standing in for a platform
// foreground service. Promotion posts a system notification.
type notificationPresence struct {
	app          fyne.App
	localization *Localization
}

func newNotificationPresence(app fyne.App, localization *Localization) *notificationPresence {
	return &notificationPresence{app: app, localization: localization}
}

// Promote announces the running subsystem with a notification
func (p *notificationPresence) Promote() error {
	p.app.SendNotification(&fyne.Notification{
		Title:   p.localization.GetText(KeyAppTitle),
		Content: p.localization.GetText(KeyFloatingActive),
	})
	return nil
}

// Demote tears nothing down; the notification is transient
func (p *notificationPresence) Demote() {
	log.Printf("Floating button presence demoted")
}

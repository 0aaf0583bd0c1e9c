package notify

// Package notify implements the lead-time notification trigger. A scan runs
// after every store mutation (there is no standing timer): an item fires when
// its remaining days equal the configured lead days exactly, so the trigger
// day must coincide with an app-active mutation. That edge-trigger behavior
// is deliberate and matched by tests.

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"

	"github.com/sisawaktu/sisawaktu/internal/expiry"
	"github.com/sisawaktu/sisawaktu/internal/model"
)

// Notification text
const (
	Title      = "SisaWaktu Priority!"
	BodyFormat = "%s akan kedaluwarsa dalam %d hari. Pakai sebelum rugi!"
)

// Sender delivers a single notification to the platform
type Sender interface {
	Send(title, body string)
}

// Scan evaluates the current snapshot and sends one notification per item
// sitting exactly at the lead-time threshold. Used items are skipped, and the
// whole scan is a no-op when alerts are disabled. Items whose stored date no
// longer parses are skipped rather than failing the scan.
func Scan(items []*model.Item, settings model.Settings, today time.Time, sender Sender) {
	if !settings.BrowserAlerts || sender == nil {
		return
	}

	for _, item := range items {
		if item.IsUsed {
			continue
		}

		expiryDate, err := item.ExpiryTime()
		if err != nil {
			log.Printf("Skipping notification scan for item %s: bad expiry date %q", item.ID, item.ExpiryDate)
			continue
		}

		days := expiry.DaysRemaining(expiryDate, today)
		if days == settings.LeadDays {
			sender.Send(Title, fmt.Sprintf(BodyFormat, item.Name, days))
		}
	}
}

// FyneSender delivers notifications through the host's notification
// capability via Fyne. A nil app degrades to a silent no-op, the desktop
// analog of denied browser notification permission.
type FyneSender struct {
	app fyne.App
}

// NewFyneSender creates a sender bound to the given app
func NewFyneSender(app fyne.App) *FyneSender {
	return &FyneSender{app: app}
}

// Send emits a system notification
func (s *FyneSender) Send(title, body string) {
	if s == nil || s.app == nil {
		return
	}

	s.app.SendNotification(&fyne.Notification{
		Title:   title,
		Content: body,
	})
}

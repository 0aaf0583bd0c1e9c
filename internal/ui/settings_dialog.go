package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sisawaktu/sisawaktu/internal/model"
	"github.com/sisawaktu/sisawaktu/internal/store"
)

// SettingsDialog edits the alert settings: the system-notification toggle
// and the lead-days slider. Changes apply only on save, wholesale, matching
// the settings record's overwrite semantics.
type SettingsDialog struct {
	store        *store.Store
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// UI components
	alertsCheck   *widget.Check
	leadSlider    *widget.Slider
	leadValueText *widget.Label
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(s *store.Store, window fyne.Window, localization *Localization) *SettingsDialog {
	sd := &SettingsDialog{
		store:        s,
		window:       window,
		localization: localization,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.alertsCheck = widget.NewCheck(sd.localization.GetText(KeyBrowserAlerts), nil)

	sd.leadValueText = widget.NewLabel("")
	sd.leadValueText.TextStyle = fyne.TextStyle{Bold: true}

	sd.leadSlider = widget.NewSlider(model.MinLeadDays, model.MaxLeadDays)
	sd.leadSlider.Step = 1
	sd.leadSlider.OnChanged = func(value float64) {
		sd.leadValueText.SetText(leadDaysLabel(int(value)))
	}

	leadRow := container.NewBorder(nil, nil, nil, sd.leadValueText,
		widget.NewLabel(sd.localization.GetText(KeyLeadTime)))

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyAlertSettings)),
		widget.NewSeparator(),

		sd.alertsCheck,

		leadRow,
		sd.leadSlider,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDlgWidth, SettingsDlgMinH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	settings := sd.store.Settings()

	sd.alertsCheck.SetChecked(settings.BrowserAlerts)
	sd.leadSlider.SetValue(float64(settings.LeadDays))
	sd.leadValueText.SetText(leadDaysLabel(settings.LeadDays))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.store.UpdateSettings(model.Settings{
		BrowserAlerts: sd.alertsCheck.Checked,
		LeadDays:      int(sd.leadSlider.Value),
	})

	widget.ShowPopUp(widget.NewLabel(sd.localization.GetText(KeySettingsSaved)), sd.window.Canvas())
}

// leadDaysLabel renders the H-n shorthand shown next to the slider
func leadDaysLabel(days int) string {
	return fmt.Sprintf("H-%d", days)
}

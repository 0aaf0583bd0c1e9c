package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sisawaktu/sisawaktu/internal/store"
)

// StatsPanel shows the aggregate counters: items per urgency band and the
// running money-saved total from used-up items.
type StatsPanel struct {
	widget.BaseWidget

	localization *Localization

	safeValue    *widget.Label
	warningValue *widget.Label
	expiredValue *widget.Label
	savedValue   *widget.Label

	content *fyne.Container
}

// NewStatsPanel creates the panel with zeroed counters
func NewStatsPanel(localization *Localization) *StatsPanel {
	p := &StatsPanel{localization: localization}

	p.safeValue = boldLabel("0")
	p.warningValue = boldLabel("0")
	p.expiredValue = boldLabel("0")
	p.savedValue = boldLabel(PricePrefix + "0")

	p.content = container.NewGridWithColumns(4,
		statCell(localization.GetText(KeyStatSafe), p.safeValue),
		statCell(localization.GetText(KeyStatWarning), p.warningValue),
		statCell(localization.GetText(KeyStatExpired), p.expiredValue),
		statCell(localization.GetText(KeyMoneySaved), p.savedValue),
	)

	p.ExtendBaseWidget(p)
	return p
}

// Update refreshes the counters from a store summary
func (p *StatsPanel) Update(summary store.Summary) {
	p.safeValue.SetText(fmt.Sprintf("%d", summary.Safe))
	p.warningValue.SetText(fmt.Sprintf("%d", summary.Warning))
	p.expiredValue.SetText(fmt.Sprintf("%d", summary.Expired))
	p.savedValue.SetText(fmt.Sprintf("%s%.0f", PricePrefix, summary.MoneySaved))
	p.Refresh()
}

// CreateRenderer implements fyne.Widget
func (p *StatsPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

func boldLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.TextStyle = fyne.TextStyle{Bold: true}
	l.Alignment = fyne.TextAlignCenter
	return l
}

func statCell(caption string, value *widget.Label) fyne.CanvasObject {
	captionLabel := widget.NewLabel(caption)
	captionLabel.Alignment = fyne.TextAlignCenter
	return container.NewVBox(captionLabel, value)
}

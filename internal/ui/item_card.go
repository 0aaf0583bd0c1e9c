package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sisawaktu/sisawaktu/internal/expiry"
	"github.com/sisawaktu/sisawaktu/internal/model"
)

// ItemCard renders a single inventory item: category, name, status dot with
// the remaining-days label, expiry date, an optional priority badge, an
// optional advice line, and the mark-used/delete actions.
type ItemCard struct {
	widget.BaseWidget

	localization *Localization

	categoryLabel  *widget.Label
	nameLabel      *widget.Label
	priorityBadge  *widget.Label
	statusDot      *canvas.Circle
	remainingLabel *widget.Label
	dateLabel      *widget.Label
	priceLabel     *widget.Label
	adviceLabel    *widget.Label
	usedBtn        *widget.Button
	deleteBtn      *widget.Button

	content *fyne.Container

	itemID     string
	onMarkUsed func(id string)
	onDelete   func(id string)
}

// NewItemCard creates an empty card; SetItem fills it before display
func NewItemCard(localization *Localization) *ItemCard {
	c := &ItemCard{localization: localization}

	c.categoryLabel = widget.NewLabel("")
	c.categoryLabel.TextStyle = fyne.TextStyle{Monospace: true}

	c.nameLabel = widget.NewLabel("")
	c.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.nameLabel.Truncation = fyne.TextTruncateEllipsis

	c.priorityBadge = widget.NewLabel(PriorityBadgeText)
	c.priorityBadge.TextStyle = fyne.TextStyle{Bold: true}
	c.priorityBadge.Hide()

	c.statusDot = canvas.NewCircle(ColorSafe)

	c.remainingLabel = widget.NewLabel("")
	c.remainingLabel.TextStyle = fyne.TextStyle{Bold: true}

	c.dateLabel = widget.NewLabel("")
	c.priceLabel = widget.NewLabel("")

	c.adviceLabel = widget.NewLabel("")
	c.adviceLabel.TextStyle = fyne.TextStyle{Italic: true}
	c.adviceLabel.Wrapping = fyne.TextWrapWord
	c.adviceLabel.Hide()

	c.usedBtn = widget.NewButton(IconUsed, func() {
		if c.onMarkUsed != nil && c.itemID != "" {
			c.onMarkUsed(c.itemID)
		}
	})
	c.usedBtn.Importance = widget.LowImportance

	c.deleteBtn = widget.NewButton(IconDelete, func() {
		if c.onDelete != nil && c.itemID != "" {
			c.onDelete(c.itemID)
		}
	})
	c.deleteBtn.Importance = widget.LowImportance

	dot := container.NewGridWrap(fyne.NewSize(StatusDotSize, StatusDotSize), c.statusDot)
	statusRow := container.NewHBox(dot, c.remainingLabel, c.dateLabel, c.priceLabel)
	header := container.NewBorder(nil, nil, nil, container.NewHBox(c.priorityBadge, c.usedBtn, c.deleteBtn),
		container.NewVBox(c.categoryLabel, c.nameLabel))

	c.content = container.NewVBox(header, statusRow, c.adviceLabel, widget.NewSeparator())

	c.ExtendBaseWidget(c)
	return c
}

// SetCallbacks sets the action handlers for this card
func (c *ItemCard) SetCallbacks(onMarkUsed, onDelete func(id string)) {
	c.onMarkUsed = onMarkUsed
	c.onDelete = onDelete
}

// SetItem binds the card to an item. status, days, and priority are derived
// by the caller from one consistent "today" so the whole list agrees.
func (c *ItemCard) SetItem(item *model.Item, status model.ExpiryStatus, remaining string, priority bool, advice string) {
	c.itemID = item.ID

	c.categoryLabel.SetText(item.Category.String())
	c.nameLabel.SetText(item.Name)
	c.remainingLabel.SetText(remaining)
	c.dateLabel.SetText(c.localization.GetText(KeyExpPrefix) + expiry.FormatDate(item.ExpiryDate))

	if item.Price > 0 {
		c.priceLabel.SetText(fmt.Sprintf("%s%.0f", PricePrefix, item.Price))
		c.priceLabel.Show()
	} else {
		c.priceLabel.Hide()
	}

	c.statusDot.FillColor = statusColor(status)
	c.statusDot.Refresh()

	// The badge only makes sense for items that can still be rescued.
	if priority && !status.IsExpired() {
		c.priorityBadge.Show()
	} else {
		c.priorityBadge.Hide()
	}

	if advice != "" {
		c.adviceLabel.SetText(advice)
		c.adviceLabel.Show()
	} else {
		c.adviceLabel.Hide()
	}

	c.Refresh()
}

// CreateRenderer implements fyne.Widget
func (c *ItemCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content)
}

// MinSize implements fyne.Widget
func (c *ItemCard) MinSize() fyne.Size {
	min := c.content.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	return min
}

// statusColor maps an urgency band to its dot color
func statusColor(status model.ExpiryStatus) color.Color {
	switch status {
	case model.StatusExpired:
		return ColorExpired
	case model.StatusWarning:
		return ColorWarning
	default:
		return ColorSafe
	}
}

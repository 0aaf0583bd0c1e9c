package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sisawaktu/sisawaktu/internal/config"
	"github.com/sisawaktu/sisawaktu/internal/expiry"
	"github.com/sisawaktu/sisawaktu/internal/model"
	"github.com/sisawaktu/sisawaktu/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        *store.Store
	uiSettings   *config.Settings
	localization *Localization

	statsPanel    *StatsPanel
	filterTabs    *container.AppTabs
	itemList      *widget.List
	itemGrid      *widget.GridWrap
	emptyState    *fyne.Container
	centerStack   *fyne.Container
	viewToggleBtn *widget.Button

	addDialog      *AddItemDialog
	settingsDialog *SettingsDialog

	currentFilter model.Category
	active        []*model.Item
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, s *store.Store) *RootUI {
	uiSettings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(uiSettings.GetLanguage())

	ui := &RootUI{
		window:        window,
		store:         s,
		uiSettings:    uiSettings,
		localization:  localization,
		currentFilter: model.CategoryAll,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Re-render whenever the store runs a mutation cycle or advice arrives.
	s.SetOnChange(ui.onStoreChange)

	ui.setupUI()
	ui.refreshItems()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.addDialog = NewAddItemDialog(ui.store, ui.window, ui.localization)
	ui.settingsDialog = NewSettingsDialog(ui.store, ui.window, ui.localization)

	// Header: title, tagline, settings and view-mode buttons
	title := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	tagline := widget.NewLabel(ui.localization.GetText(KeyTagline))

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.viewToggleBtn = widget.NewButton(viewToggleIcon(ui.uiSettings.GetViewMode()), ui.onToggleView)
	ui.viewToggleBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.viewToggleBtn, settingsBtn),
		container.NewVBox(title, tagline))

	ui.statsPanel = NewStatsPanel(ui.localization)

	// Category filter tabs
	ui.filterTabs = container.NewAppTabs(ui.buildFilterTabs()...)
	ui.filterTabs.OnSelected = func(*container.TabItem) {
		ui.currentFilter = ui.filterForTab(ui.filterTabs.SelectedIndex())
		ui.refreshItems()
	}

	// Item collection in both view modes; the toggle switches visibility
	ui.itemList = widget.NewList(
		func() int { return len(ui.active) },
		func() fyne.CanvasObject { return ui.createItemCard() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateItemCard(id, obj) },
	)
	ui.itemGrid = widget.NewGridWrap(
		func() int { return len(ui.active) },
		func() fyne.CanvasObject { return ui.createItemCard() },
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) { ui.updateItemCard(widget.ListItemID(id), obj) },
	)

	// Empty state shown instead of the collection when nothing is tracked
	emptyTitle := widget.NewLabel(ui.localization.GetText(KeyEmptyTitle))
	emptyTitle.TextStyle = fyne.TextStyle{Bold: true}
	emptyTitle.Alignment = fyne.TextAlignCenter
	emptyBody := widget.NewLabel(ui.localization.GetText(KeyEmptyBody))
	emptyBody.Alignment = fyne.TextAlignCenter
	emptyBody.Wrapping = fyne.TextWrapWord
	ui.emptyState = container.NewCenter(container.NewVBox(emptyTitle, emptyBody))

	ui.centerStack = container.NewStack(ui.itemList, ui.itemGrid, ui.emptyState)
	ui.applyViewMode()

	addBtn := widget.NewButton(IconAdd+" "+ui.localization.GetText(KeyQuickAdd), ui.onQuickAdd)
	addBtn.Importance = widget.HighImportance

	content := container.NewBorder(
		container.NewVBox(header, ui.statsPanel, ui.filterTabs), // top
		addBtn, // bottom
		nil,    // left
		nil,    // right
		ui.centerStack,
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// buildFilterTabs creates one tab per category plus the catch-all first tab
func (ui *RootUI) buildFilterTabs() []*container.TabItem {
	tabs := []*container.TabItem{
		container.NewTabItem(ui.localization.GetText(KeyAllCategories), widget.NewLabel("")),
	}
	for _, cat := range model.Categories() {
		tabs = append(tabs, container.NewTabItem(cat.String(), widget.NewLabel("")))
	}
	return tabs
}

// filterForTab maps a tab index back to a category filter
func (ui *RootUI) filterForTab(index int) model.Category {
	categories := model.Categories()
	if index <= 0 || index > len(categories) {
		return model.CategoryAll
	}
	return categories[index-1]
}

// createItemCard creates a reusable card for the list and grid widgets
func (ui *RootUI) createItemCard() fyne.CanvasObject {
	card := NewItemCard(ui.localization)
	card.SetCallbacks(ui.onMarkUsed, ui.onDeleteItem)
	return card
}

// updateItemCard binds a card to the item at the given position
func (ui *RootUI) updateItemCard(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.active) {
		return
	}
	card, ok := obj.(*ItemCard)
	if !ok {
		return
	}

	item := ui.active[id]

	remaining := item.ExpiryDate
	if expiryDate, err := item.ExpiryTime(); err == nil {
		remaining = expiry.RemainingLabel(expiryDate, time.Now())
	}

	advice, _ := ui.store.Advice(item.ID)
	card.SetItem(item, ui.store.Status(item), remaining, ui.store.IsPriority(item), advice)
}

// refreshItems recomputes the visible snapshot and redraws everything that
// derives from it
func (ui *RootUI) refreshItems() {
	ui.active = ui.store.ListActive(ui.currentFilter)
	ui.statsPanel.Update(ui.store.Stats())

	if len(ui.active) == 0 {
		ui.emptyState.Show()
	} else {
		ui.emptyState.Hide()
	}

	ui.itemList.Refresh()
	ui.itemGrid.Refresh()
}

// onStoreChange re-renders after a mutation cycle. Mutations come from UI
// event handlers but advice completions arrive on their own goroutines, so
// the refresh is marshalled onto the UI thread.
func (ui *RootUI) onStoreChange() {
	fyne.Do(ui.refreshItems)
}

// RefreshFromBackground repaints the item views from outside the UI thread,
// used for advice completions delivered by their own goroutines
func (ui *RootUI) RefreshFromBackground() {
	ui.onStoreChange()
}

// onQuickAdd opens the add-item form
func (ui *RootUI) onQuickAdd() {
	ui.addDialog.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}

// onMarkUsed flags an item as used up
func (ui *RootUI) onMarkUsed(id string) {
	ui.store.MarkUsed(id)
}

// onDeleteItem removes an item
func (ui *RootUI) onDeleteItem(id string) {
	ui.store.DeleteItem(id)
}

// onToggleView flips between list and grid rendering
func (ui *RootUI) onToggleView() {
	mode := ui.uiSettings.GetViewMode()
	if mode == config.ViewModeList {
		mode = config.ViewModeGrid
	} else {
		mode = config.ViewModeList
	}
	ui.uiSettings.SetViewMode(mode)
	ui.applyViewMode()
}

// applyViewMode shows the widget matching the configured view mode
func (ui *RootUI) applyViewMode() {
	mode := ui.uiSettings.GetViewMode()
	ui.viewToggleBtn.SetText(viewToggleIcon(mode))

	if mode == config.ViewModeGrid {
		ui.itemList.Hide()
		ui.itemGrid.Show()
	} else {
		ui.itemGrid.Hide()
		ui.itemList.Show()
	}
	ui.centerStack.Refresh()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.uiSettings.SetLanguage(langCode)

	log.Printf("Language changed to %s, rebuilding UI", langCode)

	// Dialogs and labels bake their strings in at build time; rebuild the
	// whole tree rather than chasing every label.
	ui.setupUI()
	ui.refreshItems()
}

// viewToggleIcon returns the toggle glyph for the mode the button switches to
func viewToggleIcon(mode config.ViewMode) string {
	if mode == config.ViewModeList {
		return IconGridView
	}
	return IconListView
}

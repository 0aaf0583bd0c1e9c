package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sisawaktu/sisawaktu/internal/expiry"
	"github.com/sisawaktu/sisawaktu/internal/model"
	"github.com/sisawaktu/sisawaktu/internal/platform"
	"github.com/sisawaktu/sisawaktu/internal/store"
)

// AddItemDialog is the quick-add form: name, category, expiry date, optional
// price and photo. An invalid submission keeps the dialog open with its
// values intact and surfaces no error, so the user can just fix the field.
type AddItemDialog struct {
	store        *store.Store
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// UI components
	nameEntry      *widget.Entry
	categorySelect *widget.Select
	dateEntry      *widget.Entry
	priceEntry     *widget.Entry
	photoBtn       *widget.Button
	photoLabel     *widget.Label

	imageDataURI string
}

// NewAddItemDialog creates the quick-add dialog
func NewAddItemDialog(s *store.Store, window fyne.Window, localization *Localization) *AddItemDialog {
	ad := &AddItemDialog{
		store:        s,
		window:       window,
		localization: localization,
	}

	ad.createUI()
	return ad
}

// Show resets nothing; the form keeps prior values until a successful add
func (ad *AddItemDialog) Show() {
	ad.dialog.Show()
}

// createUI creates the quick-add form
func (ad *AddItemDialog) createUI() {
	ad.nameEntry = widget.NewEntry()
	ad.nameEntry.SetPlaceHolder(ad.localization.GetText(KeyItemNameHint))

	categoryOptions := []string{}
	for _, cat := range model.Categories() {
		categoryOptions = append(categoryOptions, cat.String())
	}
	ad.categorySelect = widget.NewSelect(categoryOptions, nil)
	ad.categorySelect.SetSelected(model.CategoryKitchen.String())

	ad.dateEntry = widget.NewEntry()
	ad.dateEntry.SetPlaceHolder(expiry.DateLayout)
	ad.dateEntry.Validator = func(input string) error {
		if input == "" {
			return nil // surfaced as a silent reject on submit instead
		}
		_, err := expiry.ParseDate(input)
		return err
	}

	ad.priceEntry = widget.NewEntry()
	ad.priceEntry.SetPlaceHolder("0")

	ad.photoLabel = widget.NewLabel("")
	ad.photoLabel.Truncation = fyne.TextTruncateEllipsis
	ad.photoBtn = widget.NewButton(ad.localization.GetText(KeyBrowse), ad.onBrowsePhoto)
	photoRow := container.NewBorder(nil, nil, ad.photoBtn, nil, ad.photoLabel)

	form := container.NewVBox(
		widget.NewLabel(ad.localization.GetText(KeyItemName)),
		ad.nameEntry,

		widget.NewLabel(ad.localization.GetText(KeyCategory)),
		ad.categorySelect,

		widget.NewLabel(ad.localization.GetText(KeyExpiryDate)),
		ad.dateEntry,

		widget.NewLabel(ad.localization.GetText(KeyPrice)),
		ad.priceEntry,

		widget.NewLabel(ad.localization.GetText(KeyPhoto)),
		photoRow,
	)

	ad.dialog = dialog.NewCustomConfirm(
		ad.localization.GetText(KeyQuickAdd),
		ad.localization.GetText(KeyAddItem),
		ad.localization.GetText(KeyCancel),
		form,
		ad.onSubmit,
		ad.window,
	)

	ad.dialog.Resize(fyne.NewSize(AddDialogWidth, AddDialogHeight))
}

// onBrowsePhoto picks an image file and stores it as a data URI
func (ad *AddItemDialog) onBrowsePhoto() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		uri, err := platform.EncodeImageDataURI(reader.URI().Path())
		if err != nil {
			log.Printf("Photo rejected: %v", err)
			ad.photoLabel.SetText(ad.localization.GetText(KeyPhotoFailed))
			return
		}

		ad.imageDataURI = uri
		ad.photoLabel.SetText(reader.URI().Name())
	}, ad.window)
}

// onSubmit hands the form to the store. The store silently rejects invalid
// submissions by returning nil; the dialog then reopens with the values kept.
func (ad *AddItemDialog) onSubmit(confirmed bool) {
	if !confirmed {
		return
	}

	price := 0.0
	if ad.priceEntry.Text != "" {
		if parsed, err := strconv.ParseFloat(ad.priceEntry.Text, 64); err == nil {
			price = parsed
		}
	}

	item := ad.store.AddItem(
		ad.nameEntry.Text,
		ad.dateEntry.Text,
		model.Category(ad.categorySelect.Selected),
		price,
		ad.imageDataURI,
	)

	if item == nil {
		ad.dialog.Show()
		return
	}

	ad.nameEntry.SetText("")
	ad.dateEntry.SetText("")
	ad.priceEntry.SetText("")
	ad.photoLabel.SetText("")
	ad.imageDataURI = ""
}

package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyTagline       = "tagline"
	KeyQuickAdd      = "quick_add"
	KeyItemName      = "item_name"
	KeyItemNameHint  = "item_name_hint"
	KeyCategory      = "category"
	KeyExpiryDate    = "expiry_date"
	KeyPrice         = "price"
	KeyPhoto         = "photo"
	KeyBrowse        = "browse"
	KeyAddItem       = "add_item"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettings      = "settings"
	KeyAlertSettings = "alert_settings"
	KeyBrowserAlerts = "browser_alerts"
	KeyLeadTime      = "lead_time"
	KeyLanguage      = "language"
	KeyMarkUsed      = "mark_used"
	KeyDelete        = "delete"
	KeyAllCategories = "all_categories"
	KeyEmptyTitle    = "empty_title"
	KeyEmptyBody     = "empty_body"
	KeyStatSafe      = "stat_safe"
	KeyStatWarning   = "stat_warning"
	KeyStatExpired   = "stat_expired"
	KeyMoneySaved    = "money_saved"
	KeyExpPrefix     = "exp_prefix"
	KeyPhotoFailed   = "photo_failed"
	KeySettingsSaved = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "id",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Indonesian
	if texts, exists := l.texts["id"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"id": "Bahasa Indonesia",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Indonesian texts (default)
	l.texts["id"] = map[string]string{
		KeyAppTitle:      "SisaWaktu",
		KeyTagline:       "Ingat Sebelum Basi • Pakai Sebelum Rugi",
		KeyQuickAdd:      "Quick Add",
		KeyItemName:      "Nama Barang",
		KeyItemNameHint:  "Skincare/Obat/Susu...",
		KeyCategory:      "Kategori",
		KeyExpiryDate:    "Tanggal Expire",
		KeyPrice:         "Harga (opsional)",
		KeyPhoto:         "Foto (opsional)",
		KeyBrowse:        "Pilih Foto",
		KeyAddItem:       "Tambahkan Catatan",
		KeySave:          "Simpan",
		KeyCancel:        "Batal",
		KeySettings:      "Pengaturan",
		KeyAlertSettings: "Pengaturan Alert",
		KeyBrowserAlerts: "Notifikasi Sistem",
		KeyLeadTime:      "Waktu Pengingat",
		KeyLanguage:      "Bahasa",
		KeyMarkUsed:      "Habis Dipakai",
		KeyDelete:        "Hapus",
		KeyAllCategories: "Semua",
		KeyEmptyTitle:    "Belum Ada Catatan",
		KeyEmptyBody:     "Tap tombol di bawah untuk mulai melacak stok barangmu.",
		KeyStatSafe:      "Aman",
		KeyStatWarning:   "Segera",
		KeyStatExpired:   "Basi",
		KeyMoneySaved:    "Hemat",
		KeyExpPrefix:     "Exp: ",
		KeyPhotoFailed:   "Gagal memuat foto",
		KeySettingsSaved: "Pengaturan tersimpan",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "SisaWaktu",
		KeyTagline:       "Remember Before It Spoils • Use Before You Lose",
		KeyQuickAdd:      "Quick Add",
		KeyItemName:      "Item Name",
		KeyItemNameHint:  "Skincare/Medicine/Milk...",
		KeyCategory:      "Category",
		KeyExpiryDate:    "Expiry Date",
		KeyPrice:         "Price (optional)",
		KeyPhoto:         "Photo (optional)",
		KeyBrowse:        "Choose Photo",
		KeyAddItem:       "Add Item",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySettings:      "Settings",
		KeyAlertSettings: "Alert Settings",
		KeyBrowserAlerts: "System Notifications",
		KeyLeadTime:      "Reminder Lead Time",
		KeyLanguage:      "Language",
		KeyMarkUsed:      "Mark Used",
		KeyDelete:        "Delete",
		KeyAllCategories: "All",
		KeyEmptyTitle:    "Nothing Tracked Yet",
		KeyEmptyBody:     "Tap the button below to start tracking your stock.",
		KeyStatSafe:      "Safe",
		KeyStatWarning:   "Soon",
		KeyStatExpired:   "Expired",
		KeyMoneySaved:    "Saved",
		KeyExpPrefix:     "Exp: ",
		KeyPhotoFailed:   "Failed to load photo",
		KeySettingsSaved: "Settings saved",
	}
}

package config

import (
	"fyne.io/fyne/v2"
)

// ViewMode controls how the active item collection is rendered
type ViewMode string

const (
	ViewModeList ViewMode = "list"
	ViewModeGrid ViewMode = "grid"
)

// Settings keys for Fyne preferences
const (
	KeyViewMode = "view_mode"
	KeyLanguage = "app_language"
)

// Default values
const (
	DefaultViewMode = ViewModeList
	DefaultLanguage = "id"
)

// Settings manages UI-level preferences: the list/grid toggle and the
// interface language. Alert settings live in the item store, persisted as
// their own JSON record; these are presentation state only.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetViewMode returns the configured view mode
func (s *Settings) GetViewMode() ViewMode {
	mode := ViewMode(s.app.Preferences().String(KeyViewMode))
	if mode != ViewModeList && mode != ViewModeGrid {
		s.SetViewMode(DefaultViewMode)
		return DefaultViewMode
	}
	return mode
}

// SetViewMode sets the view mode
func (s *Settings) SetViewMode(mode ViewMode) {
	if mode != ViewModeList && mode != ViewModeGrid {
		mode = DefaultViewMode
	}
	s.app.Preferences().SetString(KeyViewMode, string(mode))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"id": "Bahasa Indonesia",
		"en": "English",
	}
}

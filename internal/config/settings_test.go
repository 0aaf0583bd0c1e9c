package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestViewMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	mode := settings.GetViewMode()
	if mode != DefaultViewMode {
		t.Errorf("Expected default view mode %s, got %s", DefaultViewMode, mode)
	}

	// Test setting custom value
	settings.SetViewMode(ViewModeGrid)
	if settings.GetViewMode() != ViewModeGrid {
		t.Errorf("Expected view mode %s, got %s", ViewModeGrid, settings.GetViewMode())
	}

	// Unknown values fall back to the default
	settings.SetViewMode(ViewMode("carousel"))
	if settings.GetViewMode() != DefaultViewMode {
		t.Errorf("Unknown view mode should default to %s, got %s", DefaultViewMode, settings.GetViewMode())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}

	// Empty language defaults back
	settings.SetLanguage("")
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Empty language should default to %s, got %s", DefaultLanguage, settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"id", "en"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

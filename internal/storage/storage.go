package storage

// Package storage is the persistence gateway. Items and settings are kept as
// two JSON blobs under fixed keys in the Fyne preferences store, mirroring
// the in-memory state with whole-snapshot overwrites (last write wins).

import (
	"encoding/json"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/sisawaktu/sisawaktu/internal/model"
)

// Preference keys for the persisted blobs
const (
	KeyItems    = "sisawaktu_items"
	KeySettings = "sisawaktu_settings"
)

// Gateway reads and writes app state to the preference store. It never
// mutates the collections it is given, it only mirrors them.
type Gateway struct {
	prefs fyne.Preferences
}

// NewGateway creates a gateway over the given preference store
func NewGateway(prefs fyne.Preferences) *Gateway {
	return &Gateway{prefs: prefs}
}

// SaveItems overwrites the persisted item collection
func (g *Gateway) SaveItems(items []*model.Item) error {
	if items == nil {
		items = []*model.Item{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	g.prefs.SetString(KeyItems, string(data))
	return nil
}

// LoadItems reads the persisted item collection. An absent key yields an
// empty collection; malformed JSON is an error for the caller to treat as
// fatal, no recovery is attempted here.
func (g *Gateway) LoadItems() ([]*model.Item, error) {
	raw := g.prefs.String(KeyItems)
	if raw == "" {
		return []*model.Item{}, nil
	}

	var items []*model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode stored items: %w", err)
	}
	if items == nil {
		items = []*model.Item{}
	}
	return items, nil
}

// SaveSettings overwrites the persisted settings record
func (g *Gateway) SaveSettings(settings model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	g.prefs.SetString(KeySettings, string(data))
	return nil
}

// LoadSettings reads the persisted settings record, falling back to defaults
// when nothing is stored. Lead days are clamped into the supported range so
// an out-of-range stored value cannot break the slider.
func (g *Gateway) LoadSettings() (model.Settings, error) {
	raw := g.prefs.String(KeySettings)
	if raw == "" {
		return model.DefaultSettings(), nil
	}

	var settings model.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return model.DefaultSettings(), fmt.Errorf("failed to decode stored settings: %w", err)
	}

	settings.LeadDays = model.ClampLeadDays(settings.LeadDays)
	return settings, nil
}

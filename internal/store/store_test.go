package store

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/sisawaktu/sisawaktu/internal/model"
	"github.com/sisawaktu/sisawaktu/internal/storage"
)

type recordingSender struct {
	sent []string
}

func (r *recordingSender) Send(title, body string) {
	r.sent = append(r.sent, body)
}

func fixedToday() time.Time {
	return time.Date(2024, time.June, 10, 9, 30, 0, 0, time.Local)
}

// newTestStore builds a store over an in-memory preference store with a
// fixed clock and a recording notification sender.
func newTestStore(t *testing.T) (*Store, *storage.Gateway, *recordingSender) {
	t.Helper()

	app := test.NewApp()
	gateway := storage.NewGateway(app.Preferences())
	sender := &recordingSender{}

	s := NewStore(gateway, sender, nil)
	s.SetClock(fixedToday)
	if err := s.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return s, gateway, sender
}

func TestAddItem(t *testing.T) {
	s, gateway, _ := newTestStore(t)

	item := s.AddItem("Susu UHT", "2024-06-20", model.CategoryKitchen, 18500, "")
	if item == nil {
		t.Fatal("AddItem returned nil for a valid submission")
	}

	if item.ID == "" {
		t.Error("AddItem should generate an id")
	}
	if item.CreatedAt != fixedToday().UnixMilli() {
		t.Errorf("CreatedAt = %d, expected %d", item.CreatedAt, fixedToday().UnixMilli())
	}

	// Snapshot must already be persisted.
	persisted, err := gateway.LoadItems()
	if err != nil {
		t.Fatalf("LoadItems returned error: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != item.ID {
		t.Errorf("Persisted snapshot = %+v, expected the new item", persisted)
	}
}

func TestAddItem_PrependsNewestFirst(t *testing.T) {
	s, _, _ := newTestStore(t)

	first := s.AddItem("Roti", "2024-06-20", model.CategoryKitchen, 0, "")
	second := s.AddItem("Keju", "2024-06-25", model.CategoryKitchen, 0, "")

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Error("Insertion order should be newest first")
	}
}

func TestAddItem_SilentRejects(t *testing.T) {
	s, _, _ := newTestStore(t)

	tests := []struct {
		name       string
		expiryDate string
		category   model.Category
	}{
		{"", "2024-06-20", model.CategoryKitchen},       // empty name
		{"Susu", "", model.CategoryKitchen},             // empty date
		{"Susu", "20/06/2024", model.CategoryKitchen},   // unparsable date
		{"Susu", "2024-06-20", model.Category("Gudang")}, // unknown category
	}

	for _, tc := range tests {
		if item := s.AddItem(tc.name, tc.expiryDate, tc.category, 0, ""); item != nil {
			t.Errorf("AddItem(%q, %q, %q) should be rejected", tc.name, tc.expiryDate, tc.category)
		}
	}

	if count := len(s.All()); count != 0 {
		t.Errorf("Rejected submissions must not change the collection, got %d items", count)
	}
}

func TestAddItem_NegativePriceStoredAsZero(t *testing.T) {
	s, _, _ := newTestStore(t)

	item := s.AddItem("Obat flu", "2024-06-20", model.CategoryMedicine, -100, "")
	if item == nil {
		t.Fatal("AddItem returned nil")
	}
	if item.Price != 0 {
		t.Errorf("Price = %v, expected 0", item.Price)
	}
}

func TestDeleteItem(t *testing.T) {
	s, gateway, _ := newTestStore(t)

	item := s.AddItem("Roti", "2024-06-20", model.CategoryKitchen, 0, "")
	s.DeleteItem(item.ID)

	if count := len(s.All()); count != 0 {
		t.Errorf("Expected empty collection after delete, got %d", count)
	}

	persisted, _ := gateway.LoadItems()
	if len(persisted) != 0 {
		t.Errorf("Delete should persist the removal, got %d items", len(persisted))
	}

	// Unknown id is a silent no-op.
	s.DeleteItem("missing")
}

func TestMarkUsed(t *testing.T) {
	s, gateway, _ := newTestStore(t)

	item := s.AddItem("Susu UHT", "2024-06-20", model.CategoryKitchen, 18500, "")
	s.MarkUsed(item.ID)

	active := s.ListActive(model.CategoryAll)
	if len(active) != 0 {
		t.Errorf("Used item should leave the active view, got %d items", len(active))
	}

	// Still present in the persisted collection for aggregation.
	persisted, _ := gateway.LoadItems()
	if len(persisted) != 1 || !persisted[0].IsUsed {
		t.Errorf("Used item should stay persisted with isUsed set, got %+v", persisted)
	}

	// Unknown id leaves everything untouched.
	s.MarkUsed("missing")
	if len(s.All()) != 1 {
		t.Error("MarkUsed on unknown id must not change the collection")
	}
}

func TestListActive_SortedByExpiry(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddItem("December", "2024-12-01", model.CategoryOther, 0, "")
	s.AddItem("July", "2024-07-01", model.CategoryOther, 0, "")
	s.AddItem("August", "2024-08-01", model.CategoryOther, 0, "")

	active := s.ListActive(model.CategoryAll)
	expected := []string{"July", "August", "December"}

	if len(active) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(active))
	}
	for i, name := range expected {
		if active[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, active[i].Name)
		}
	}
}

func TestListActive_StableForEqualDates(t *testing.T) {
	s, _, _ := newTestStore(t)

	// Prepend ordering makes the later addition come first in the raw
	// collection; the stable sort must preserve exactly that relative order.
	s.AddItem("First added", "2024-06-20", model.CategoryKitchen, 0, "")
	s.AddItem("Second added", "2024-06-20", model.CategoryKitchen, 0, "")

	active := s.ListActive(model.CategoryAll)
	if len(active) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(active))
	}
	if active[0].Name != "Second added" || active[1].Name != "First added" {
		t.Errorf("Stable sort broke insertion order: %s, %s", active[0].Name, active[1].Name)
	}
}

func TestListActive_CategoryFilter(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddItem("Sunscreen", "2024-07-01", model.CategorySkincare, 0, "")
	s.AddItem("Susu", "2024-06-20", model.CategoryKitchen, 0, "")
	s.AddItem("Toner", "2024-08-01", model.CategorySkincare, 0, "")

	skincare := s.ListActive(model.CategorySkincare)
	if len(skincare) != 2 {
		t.Fatalf("Expected 2 skincare items, got %d", len(skincare))
	}
	for _, item := range skincare {
		if item.Category != model.CategorySkincare {
			t.Errorf("Filter leaked category %s", item.Category)
		}
	}
}

func TestNotification_FiresOnExactLeadMatch(t *testing.T) {
	s, _, sender := newTestStore(t)

	// Default lead days is 3; 2024-06-13 is exactly 3 days out.
	s.AddItem("Susu UHT", "2024-06-13", model.CategoryKitchen, 0, "")

	if len(sender.sent) != 1 {
		t.Fatalf("Expected 1 notification from the add cycle, got %d", len(sender.sent))
	}

	// The matching item is re-notified on every further mutation cycle.
	s.AddItem("Roti", "2024-12-01", model.CategoryOther, 0, "")
	if len(sender.sent) != 2 {
		t.Errorf("Expected a rescan notification per mutation, got %d total", len(sender.sent))
	}
}

func TestNotification_RespectsSettings(t *testing.T) {
	s, _, sender := newTestStore(t)

	s.UpdateSettings(model.Settings{BrowserAlerts: false, LeadDays: 3})
	sender.sent = nil

	s.AddItem("Susu UHT", "2024-06-13", model.CategoryKitchen, 0, "")
	if len(sender.sent) != 0 {
		t.Errorf("Disabled alerts should suppress notifications, got %v", sender.sent)
	}

	// Re-enabling with a different lead time retargets the scan.
	s.UpdateSettings(model.Settings{BrowserAlerts: true, LeadDays: 1})
	sender.sent = nil
	s.AddItem("Roti", "2024-06-11", model.CategoryKitchen, 0, "")
	if len(sender.sent) != 1 {
		t.Errorf("Expected notification at new lead time, got %d", len(sender.sent))
	}
}

func TestUpdateSettings_ClampsAndPersists(t *testing.T) {
	s, gateway, _ := newTestStore(t)

	s.UpdateSettings(model.Settings{BrowserAlerts: true, LeadDays: 30})

	if got := s.Settings().LeadDays; got != model.MaxLeadDays {
		t.Errorf("LeadDays = %d, expected clamp to %d", got, model.MaxLeadDays)
	}

	persisted, err := gateway.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if persisted.LeadDays != model.MaxLeadDays {
		t.Errorf("Persisted LeadDays = %d, expected %d", persisted.LeadDays, model.MaxLeadDays)
	}
}

func TestIsPriority_TracksSettings(t *testing.T) {
	s, _, _ := newTestStore(t)

	item := s.AddItem("Susu UHT", "2024-06-15", model.CategoryKitchen, 0, "") // 5 days out

	if s.IsPriority(item) {
		t.Error("5 days out should not be priority at lead days 3")
	}

	s.UpdateSettings(model.Settings{BrowserAlerts: true, LeadDays: 7})
	if !s.IsPriority(item) {
		t.Error("5 days out should be priority at lead days 7")
	}
}

func TestStats(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddItem("Safe", "2024-07-10", model.CategoryOther, 0, "")
	s.AddItem("Warning", "2024-06-13", model.CategoryOther, 0, "")
	s.AddItem("Expired", "2024-06-01", model.CategoryOther, 0, "")
	used := s.AddItem("Used up", "2024-06-12", model.CategoryKitchen, 25000, "")
	s.MarkUsed(used.ID)

	stats := s.Stats()

	if stats.Safe != 1 || stats.Warning != 1 || stats.Expired != 1 {
		t.Errorf("Band counts = %d/%d/%d, expected 1/1/1", stats.Safe, stats.Warning, stats.Expired)
	}
	if stats.MoneySaved != 25000 {
		t.Errorf("MoneySaved = %v, expected 25000", stats.MoneySaved)
	}
}

func TestLoad_RestoresPersistedState(t *testing.T) {
	app := test.NewApp()
	gateway := storage.NewGateway(app.Preferences())

	first := NewStore(gateway, nil, nil)
	first.SetClock(fixedToday)
	if err := first.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	first.AddItem("Susu UHT", "2024-06-20", model.CategoryKitchen, 18500, "")
	first.UpdateSettings(model.Settings{BrowserAlerts: false, LeadDays: 5})

	// A fresh store over the same preferences sees the same state.
	second := NewStore(gateway, nil, nil)
	second.SetClock(fixedToday)
	if err := second.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if count := len(second.All()); count != 1 {
		t.Errorf("Expected 1 restored item, got %d", count)
	}
	if settings := second.Settings(); settings.LeadDays != 5 || settings.BrowserAlerts {
		t.Errorf("Restored settings = %+v, expected lead days 5 with alerts off", settings)
	}
}

func TestLoad_CorruptItemsIsFatal(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(storage.KeyItems, "][")

	s := NewStore(storage.NewGateway(app.Preferences()), nil, nil)
	if err := s.Load(); err == nil {
		t.Error("Load should fail on a corrupt items blob")
	}
}

func TestLoad_CorruptSettingsFallsBack(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(storage.KeySettings, "][")

	s := NewStore(storage.NewGateway(app.Preferences()), nil, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Corrupt settings should not be fatal, got %v", err)
	}

	if s.Settings() != model.DefaultSettings() {
		t.Errorf("Expected default settings fallback, got %+v", s.Settings())
	}
}

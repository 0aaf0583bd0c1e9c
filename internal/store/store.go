package store

// Package store owns the in-memory item collection and the alert settings
// for the process lifetime. Every mutation runs the same cycle: update the
// collection, mirror the full snapshot through the persistence gateway, scan
// for lead-time notifications, and tell the UI to re-render.

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sisawaktu/sisawaktu/internal/advice"
	"github.com/sisawaktu/sisawaktu/internal/expiry"
	"github.com/sisawaktu/sisawaktu/internal/model"
	"github.com/sisawaktu/sisawaktu/internal/notify"
	"github.com/sisawaktu/sisawaktu/internal/storage"
)

// ItemIDPrefix namespaces generated item ids
const ItemIDPrefix = "item-"

// Summary aggregates the collection for the stats header
type Summary struct {
	Safe       int
	Warning    int
	Expired    int
	MoneySaved float64 // total price of items marked used before expiring fully
}

// Store is the single owner of items and settings. Mutations originate from
// serialized UI events; the mutex only guards against reads racing the
// asynchronous advice callback path.
type Store struct {
	gateway   *storage.Gateway
	sender    notify.Sender
	adviceSvc *advice.Service
	now       func() time.Time

	items    []*model.Item
	settings model.Settings
	mutex    sync.RWMutex

	onChange func() // callback for UI updates
}

// NewStore creates a store wired to its collaborators. Any of sender and
// adviceSvc may be nil, which disables that trigger.
func NewStore(gateway *storage.Gateway, sender notify.Sender, adviceSvc *advice.Service) *Store {
	return &Store{
		gateway:   gateway,
		sender:    sender,
		adviceSvc: adviceSvc,
		now:       time.Now,
		items:     []*model.Item{},
		settings:  model.DefaultSettings(),
	}
}

// SetClock overrides the time source, used by tests
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// SetOnChange sets the callback invoked after every mutation cycle
func (s *Store) SetOnChange(callback func()) {
	s.onChange = callback
}

// Load initializes state from the persistence gateway. A corrupt items blob
// is fatal and reported to the caller; corrupt settings fall back to defaults
// with a logged warning so a broken slider value cannot take the app down.
func (s *Store) Load() error {
	items, err := s.gateway.LoadItems()
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}

	settings, err := s.gateway.LoadSettings()
	if err != nil {
		log.Printf("Stored settings unreadable, using defaults: %v", err)
	}

	s.mutex.Lock()
	s.items = items
	s.settings = settings
	s.mutex.Unlock()

	return nil
}

// AddItem validates and prepends a new item (newest first), then runs the
// mutation cycle and spawns advice enrichment. Invalid submissions (empty
// name or date, unparsable date, unknown category) are silently rejected and
// return nil, matching the add-form UX. A negative price is stored as 0.
func (s *Store) AddItem(name, expiryDate string, category model.Category, price float64, imageURL string) *model.Item {
	if name == "" || expiryDate == "" {
		return nil
	}
	if _, err := expiry.ParseDate(expiryDate); err != nil {
		log.Printf("Rejecting item %q: bad expiry date %q", name, expiryDate)
		return nil
	}
	if !category.Valid() {
		log.Printf("Rejecting item %q: unknown category %q", name, category)
		return nil
	}
	if price < 0 {
		price = 0
	}

	item := &model.Item{
		ID:         generateItemID(),
		Name:       name,
		Category:   category,
		ExpiryDate: expiryDate,
		CreatedAt:  s.now().UnixMilli(),
		ImageURL:   imageURL,
		Price:      price,
	}

	s.mutex.Lock()
	s.items = append([]*model.Item{item}, s.items...)
	s.mutex.Unlock()

	s.commit()

	if s.adviceSvc != nil {
		s.adviceSvc.Fetch(item.ID, item.Name, item.Category.String())
	}

	return item
}

// DeleteItem removes the item with the given id; unknown ids are a no-op
func (s *Store) DeleteItem(id string) {
	s.mutex.Lock()
	changed := false
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			changed = true
			break
		}
	}
	s.mutex.Unlock()

	if changed {
		s.commit()
	}
}

// MarkUsed flags an item as used up. Used items leave the active view and
// the notification scan but stay in storage for the money-saved total.
// Unknown or already-used ids are a no-op.
func (s *Store) MarkUsed(id string) {
	s.mutex.Lock()
	changed := false
	for _, item := range s.items {
		if item.ID == id && !item.IsUsed {
			item.IsUsed = true
			changed = true
			break
		}
	}
	s.mutex.Unlock()

	if changed {
		s.commit()
	}
}

// ListActive returns the non-used items, optionally filtered to one
// category, sorted ascending by expiry date. The sort is stable so items
// sharing a date keep their insertion order.
func (s *Store) ListActive(filter model.Category) []*model.Item {
	s.mutex.RLock()
	active := make([]*model.Item, 0, len(s.items))
	for _, item := range s.items {
		if item.IsUsed {
			continue
		}
		if filter != model.CategoryAll && item.Category != filter {
			continue
		}
		active = append(active, item)
	}
	s.mutex.RUnlock()

	// Fixed-width YYYY-MM-DD strings sort chronologically.
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].ExpiryDate < active[j].ExpiryDate
	})

	return active
}

// All returns a snapshot of the full collection, used items included
func (s *Store) All() []*model.Item {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snapshot := make([]*model.Item, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// Settings returns the current alert settings
func (s *Store) Settings() model.Settings {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.settings
}

// UpdateSettings replaces the settings record wholesale and reruns the
// mutation cycle, since a lead-days change re-evaluates priorities and
// notification matches.
func (s *Store) UpdateSettings(settings model.Settings) {
	settings.LeadDays = model.ClampLeadDays(settings.LeadDays)

	s.mutex.Lock()
	s.settings = settings
	s.mutex.Unlock()

	s.commit()
}

// IsPriority reports whether the item falls within the configured lead time,
// computed fresh from the current settings and date
func (s *Store) IsPriority(item *model.Item) bool {
	expiryDate, err := item.ExpiryTime()
	if err != nil {
		return false
	}
	return expiry.IsPriority(expiryDate, s.Settings().LeadDays, s.now())
}

// Status classifies an item against the fixed warning band
func (s *Store) Status(item *model.Item) model.ExpiryStatus {
	expiryDate, err := item.ExpiryTime()
	if err != nil {
		return model.StatusExpired
	}
	return expiry.StatusOf(expiryDate, s.now())
}

// Advice returns the enrichment tip for an item, if it has arrived
func (s *Store) Advice(id string) (string, bool) {
	if s.adviceSvc == nil {
		return "", false
	}
	return s.adviceSvc.Get(id)
}

// Stats aggregates the collection: band counts over active items plus the
// money-saved total over used ones
func (s *Store) Stats() Summary {
	s.mutex.RLock()
	items := make([]*model.Item, len(s.items))
	copy(items, s.items)
	s.mutex.RUnlock()

	today := s.now()

	var summary Summary
	for _, item := range items {
		if item.IsUsed {
			summary.MoneySaved += item.Price
			continue
		}

		expiryDate, err := item.ExpiryTime()
		if err != nil {
			continue
		}

		switch expiry.StatusOf(expiryDate, today) {
		case model.StatusSafe:
			summary.Safe++
		case model.StatusWarning:
			summary.Warning++
		case model.StatusExpired:
			summary.Expired++
		}
	}

	return summary
}

// commit mirrors the snapshot to storage, scans for notifications, and
// signals the UI. Persistence failures are logged, not propagated: in-memory
// state is already updated and the next mutation retries the write.
func (s *Store) commit() {
	s.mutex.RLock()
	items := make([]*model.Item, len(s.items))
	copy(items, s.items)
	settings := s.settings
	s.mutex.RUnlock()

	if err := s.gateway.SaveItems(items); err != nil {
		log.Printf("Failed to persist items: %v", err)
	}
	if err := s.gateway.SaveSettings(settings); err != nil {
		log.Printf("Failed to persist settings: %v", err)
	}

	notify.Scan(items, settings, s.now(), s.sender)

	if s.onChange != nil {
		s.onChange()
	}
}

// generateItemID generates a unique item ID using UUID v7 for better
// uniqueness and time ordering
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ItemIDPrefix+"%d", time.Now().UnixNano())
	}
	return ItemIDPrefix + id.String()
}

package advice

// Package advice enriches items with a short storage tip fetched from an
// external text-generation service. Requests are fire-and-forget: the item
// exists and is fully usable before any tip arrives, failures collapse to a
// fixed fallback string, and results land in a side map keyed by item id.

import (
	"context"
	"log"
	"sync"
	"time"
)

// FallbackError replaces the tip when the provider fails for any reason
const FallbackError = "Simpan sesuai petunjuk kemasan."

// RequestTimeout bounds a single enrichment request
const RequestTimeout = 15 * time.Second

// Service manages asynchronous advice enrichment
type Service struct {
	provider Provider

	advices map[string]string
	mutex   sync.RWMutex

	onUpdate func(itemID, tip string) // callback for UI updates
}

// NewService creates a new advice service
func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
		advices:  make(map[string]string),
	}
}

// SetUpdateCallback sets the callback invoked when a tip arrives
func (s *Service) SetUpdateCallback(callback func(itemID, tip string)) {
	s.onUpdate = callback
}

// Fetch spawns a background request for the item's storage tip. It returns
// immediately; the result (or fallback) is delivered through Get and the
// update callback. A completion for an already-deleted item just writes an
// orphaned map entry that no reader will look up.
func (s *Service) Fetch(itemID, itemName, category string) {
	if s.provider == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		tip, err := s.provider.StorageTip(ctx, itemName, category)
		if err != nil {
			log.Printf("Advice request failed for item %s: %v", itemID, err)
			tip = FallbackError
		}

		s.mutex.Lock()
		s.advices[itemID] = tip
		s.mutex.Unlock()

		if s.onUpdate != nil {
			s.onUpdate(itemID, tip)
		}
	}()
}

// Get returns the tip for an item, if one has arrived
func (s *Service) Get(itemID string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	tip, exists := s.advices[itemID]
	return tip, exists
}

// Package history keeps converted trip sheets in memory for later download.
package history

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/mapper"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
)

type record struct {
	entry      models.HistoryEntry
	conversion *models.Conversion
}

// Store is a concurrency-safe history of conversions keyed by id.
type Store struct {
	items *cache.Cache

	mu    sync.Mutex
	order int
}

// New creates a store. A ttl of zero keeps entries forever; cleanupInterval
// controls how often expired entries are purged (zero disables purging).
func New(ttl, cleanupInterval time.Duration) *Store {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Store{items: cache.New(ttl, cleanupInterval)}
}

// Add stores a conversion and returns its new history entry.
func (s *Store) Add(c *models.Conversion) models.HistoryEntry {
	s.mu.Lock()
	s.order++
	order := s.order
	s.mu.Unlock()

	created := c.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	entry := models.HistoryEntry{
		ID:        uuid.NewString(),
		Order:     order,
		Name:      c.Name,
		Date:      created.Format(mapper.DisplayLayout),
		Records:   c.Records,
		CreatedAt: created,
	}
	s.items.SetDefault(entry.ID, record{entry: entry, conversion: c})
	return entry
}

// Get returns the entry and conversion stored under id.
func (s *Store) Get(id string) (models.HistoryEntry, *models.Conversion, bool) {
	v, ok := s.items.Get(id)
	if !ok {
		return models.HistoryEntry{}, nil, false
	}
	rec := v.(record)
	return rec.entry, rec.conversion, true
}

// List returns all live entries in insertion order.
func (s *Store) List() []models.HistoryEntry {
	items := s.items.Items()
	entries := make([]models.HistoryEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.Object.(record).entry)
	}
	slices.SortFunc(entries, func(a, b models.HistoryEntry) int {
		return a.Order - b.Order
	})
	return entries
}

// Delete removes the entry stored under id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	if _, ok := s.items.Get(id); !ok {
		return false
	}
	s.items.Delete(id)
	return true
}

// Len returns the number of stored entries, including expired ones not yet purged.
func (s *Store) Len() int {
	return s.items.ItemCount()
}

package cache

import (
	"sync"
	"time"

	"ofertas-api/internal/offer"
)

// Entry is one cached result set. Freshness is decided by the caller from
// Timestamp; the store never expires entries on its own.
type Entry struct {
	Timestamp time.Time     `json:"timestamp"`
	Data      []offer.Offer `json:"data"`
}

// Store maps a normalized query key to its last computed offer list. Stale
// entries are ignored by the caller, not evicted, and get overwritten by the
// next successful lookup for the same key.
type Store interface {
	Get(key string) (Entry, bool)
	Set(key string, data []offer.Offer)
}

// Memory is an in-process Store. Gin serves requests on concurrent
// goroutines, so the map is mutex-guarded. No size bound: entries are small
// and live only as long as the process.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(key string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	return e, ok
}

func (m *Memory) Set(key string, data []offer.Offer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = Entry{Timestamp: m.now(), Data: data}
}

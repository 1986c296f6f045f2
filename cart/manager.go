package cart

import (
	"sync"

	"github.com/defaulths/E-commerceWeb-GERALDO/catalog"
	"github.com/defaulths/E-commerceWeb-GERALDO/storage"
)

// Manager hands out one Store per guest key, creating (and loading) it on
// first use. One cart per guest, same as one cart per storage key.
type Manager struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	slot    storage.Slot
	stores  map[string]*Store
	subs    []func(Snapshot)
}

func NewManager(cat *catalog.Catalog, slot storage.Slot) *Manager {
	return &Manager{
		catalog: cat,
		slot:    slot,
		stores:  make(map[string]*Store),
	}
}

// Store returns the cart for key, loading it from the slot on first access.
// An empty key maps to the default cart.
func (m *Manager) Store(key string) *Store {
	if key == "" {
		key = DefaultKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[key]; ok {
		return s
	}
	s := NewStore(m.catalog, m.slot, key)
	s.OnChange(m.broadcast)
	m.stores[key] = s
	return s
}

// Subscribe registers a callback invoked with a snapshot after every mutation
// on any managed cart.
func (m *Manager) Subscribe(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

func (m *Manager) broadcast(snap Snapshot) {
	m.mu.Lock()
	subs := make([]func(Snapshot), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

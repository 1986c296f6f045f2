// Package cart owns the in-memory cart state and its persisted mirror. Every
// mutation is written back to the storage slot before it returns, so a fresh
// process (or a second page load) sees the same ordered line collection.
package cart

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/defaulths/E-commerceWeb-GERALDO/catalog"
	"github.com/defaulths/E-commerceWeb-GERALDO/models"
	"github.com/defaulths/E-commerceWeb-GERALDO/storage"
)

var (
	// ErrProductNotFound reports an unknown product id. The cart is unchanged.
	ErrProductNotFound = errors.New("product does not exist")

	// ErrStockExceeded reports a quantity above the product's stock. Add
	// clamps to stock and still returns this error (the clamped part of the
	// request succeeded); SetQuantity returns it without mutating.
	ErrStockExceeded = errors.New("stock limit reached")
)

// DefaultKey is the slot key used when no guest id is supplied, matching the
// single storage key the storefront pages share.
const DefaultKey = "cart"

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	Key   string            `json:"guest_id"`
	Lines []models.CartLine `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

// Store is one cart bound to one slot key. Mutations are serialized with a
// mutex; concurrent writers on the same key through different Stores (or
// different processes) remain last-write-wins on the slot.
type Store struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	slot     storage.Slot
	key      string
	lines    []models.CartLine
	onChange func(Snapshot)
}

// NewStore loads the cart persisted under key. A missing or corrupt slot
// value yields an empty cart, never an error.
func NewStore(cat *catalog.Catalog, slot storage.Slot, key string) *Store {
	s := &Store{catalog: cat, slot: slot, key: key}
	s.load()
	return s
}

// OnChange registers a callback invoked with a snapshot after every mutation.
// At most one callback is held; the Manager fans out from there.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Store) load() {
	data, ok, err := s.slot.Read(s.key)
	if err != nil {
		log.Printf("⚠️ Failed to read cart slot %q, starting empty: %v", s.key, err)
		return
	}
	if !ok {
		return
	}
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Printf("⚠️ Corrupt cart slot %q, starting empty: %v", s.key, err)
		return
	}
	s.lines = lines
}

// persist writes the current line collection back to the slot. Callers hold
// the mutex.
func (s *Store) persist() {
	data, err := json.Marshal(s.lines)
	if err != nil {
		log.Printf("❌ Failed to encode cart %q: %v", s.key, err)
		return
	}
	if err := s.slot.Write(s.key, data); err != nil {
		log.Printf("❌ Failed to persist cart %q: %v", s.key, err)
	}
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
}

// Add puts quantity units of a product into the cart. An existing line is
// incremented; a new line snapshots the product's name, price, image and
// unit. Quantity is clamped to the product's stock on every path; when the
// clamp applies the mutation is kept and ErrStockExceeded is returned.
func (s *Store) Add(productID uint, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clamped := false
	if line := s.find(productID); line != nil {
		line.Quantity += quantity
		if line.Quantity > product.Stock {
			line.Quantity = product.Stock
			clamped = true
		}
	} else {
		if quantity > product.Stock {
			quantity = product.Stock
			clamped = true
		}
		s.lines = append(s.lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
			Unit:      product.Unit,
		})
	}

	s.persist()
	if clamped {
		return ErrStockExceeded
	}
	return nil
}

// Remove deletes the line for productID. Removing an absent id is a no-op.
func (s *Store) Remove(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.persist()
}

// SetQuantity replaces a line's quantity. Zero or negative removes the line.
// A quantity above stock fails without touching the cart.
func (s *Store) SetQuantity(productID uint, quantity int) error {
	if quantity <= 0 {
		s.Remove(productID)
		return nil
	}
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return ErrProductNotFound
	}
	if quantity > product.Stock {
		return ErrStockExceeded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.find(productID)
	if line == nil {
		return ErrProductNotFound
	}
	line.Quantity = quantity
	s.persist()
	return nil
}

// Clear empties the cart and persists the empty collection.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

// Total is the sum of price*quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.lines)
}

// Count is the sum of quantities over all lines, used for the header badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return count(s.lines)
}

// Lines returns a copy of the line collection in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Snapshot returns the read-only view for the presentation layer.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return Snapshot{
		Key:   s.key,
		Lines: lines,
		Total: total(lines),
		Count: count(lines),
	}
}

// find returns a pointer into s.lines, valid only under the mutex.
func (s *Store) find(productID uint) *models.CartLine {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return &s.lines[i]
		}
	}
	return nil
}

func total(lines []models.CartLine) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

func count(lines []models.CartLine) int {
	var sum int
	for _, line := range lines {
		sum += line.Quantity
	}
	return sum
}

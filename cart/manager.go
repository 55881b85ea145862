package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/ARNOB663/Food-Network/models"
	"github.com/ARNOB663/Food-Network/pkg/logx"
)

const persistTimeout = 5 * time.Second

// Manager holds one cart: an ordered list of product lines, unique per
// product id. Every mutation snapshots the full line list to the store
// asynchronously; the in-memory state stays authoritative for the session
// whether or not the write lands.
//
// Stock-limit violations are silent no-ops: an add or update that would push
// a line past the product's stock leaves the cart untouched and reports
// nothing.
type Manager struct {
	store SnapshotStore
	key   string

	mu    sync.Mutex
	lines []models.CartLine
	rev   uint64

	// saveMu serializes store writes; savedRev tracks the newest revision
	// applied so stale in-flight snapshots are dropped (last write wins).
	saveMu   sync.Mutex
	savedRev uint64
	pending  sync.WaitGroup
}

// NewManager hydrates a cart from the store. A missing or unreadable
// snapshot yields an empty cart; the failure is logged, not returned.
func NewManager(store SnapshotStore, key string) *Manager {
	m := &Manager{store: store, key: key}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrSnapshotMissing) {
			logx.Error().Err(err).Str("key", key).Msg("cart hydration failed, starting empty")
		}
		return m
	}
	if err := json.Unmarshal([]byte(raw), &m.lines); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("cart snapshot corrupt, starting empty")
		m.lines = nil
	}
	return m
}

// AddToCart merges quantity into an existing line or appends a new one in
// insertion order. Exceeding the product's stock rejects the whole mutation
// silently.
func (m *Manager) AddToCart(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, line := range m.lines {
		if line.Product.ID != product.ID {
			continue
		}
		newQty := line.Quantity + quantity
		if newQty > product.Stock {
			return
		}
		m.lines[i].Quantity = newQty
		m.persistLocked()
		return
	}

	if quantity > product.Stock {
		return
	}
	m.lines = append(m.lines, models.CartLine{Product: product, Quantity: quantity})
	m.persistLocked()
}

// RemoveFromCart drops the line for the product id. Removing an absent line
// is a no-op.
func (m *Manager) RemoveFromCart(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, line := range m.lines {
		if line.Product.ID == productID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			m.persistLocked()
			return
		}
	}
}

// UpdateQuantity sets a line's quantity exactly. Zero or negative removes
// the line; exceeding stock leaves it unchanged; an unknown id is a no-op.
func (m *Manager) UpdateQuantity(productID string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, line := range m.lines {
		if line.Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			m.persistLocked()
			return
		}
		if quantity > line.Product.Stock {
			return
		}
		m.lines[i].Quantity = quantity
		m.persistLocked()
		return
	}
}

// ClearCart empties the cart. The empty snapshot is persisted like any other
// mutation; the stored key stays present.
func (m *Manager) ClearCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
	m.persistLocked()
}

// ResetCart empties the cart and removes the persisted key synchronously, so
// a logout never leaks cart contents to the next account on the device.
func (m *Manager) ResetCart() {
	m.mu.Lock()
	m.lines = nil
	m.rev++
	rev := m.rev
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if err := m.store.Remove(ctx, m.key); err != nil {
		logx.Error().Err(err).Str("key", m.key).Msg("failed to remove cart snapshot")
	}
	if rev > m.savedRev {
		m.savedRev = rev
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (m *Manager) Lines() []models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// TotalItems sums quantities across all lines.
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, line := range m.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity across all lines. The accumulator
// is not rounded between lines; display formatting is the caller's concern.
func (m *Manager) TotalPrice() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0.0
	for _, line := range m.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// Flush blocks until all in-flight snapshot writes settle. Used on shutdown
// and in tests; normal mutations never wait on persistence.
func (m *Manager) Flush() {
	m.pending.Wait()
}

// persistLocked schedules a fire-and-forget snapshot write of the current
// lines. Caller must hold mu. Out-of-order completions are resolved by
// revision: a write older than the newest applied one is dropped.
func (m *Manager) persistLocked() {
	m.rev++
	rev := m.rev
	snapshot := make([]models.CartLine, len(m.lines))
	copy(snapshot, m.lines)

	m.pending.Add(1)
	go func() {
		defer m.pending.Done()

		data, err := json.Marshal(snapshot)
		if err != nil {
			logx.Error().Err(err).Str("key", m.key).Msg("failed to encode cart snapshot")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		m.saveMu.Lock()
		defer m.saveMu.Unlock()
		if rev < m.savedRev {
			return
		}
		if err := m.store.Set(ctx, m.key, string(data)); err != nil {
			logx.Error().Err(err).Str("key", m.key).Msg("failed to persist cart snapshot")
			return
		}
		m.savedRev = rev
	}()
}

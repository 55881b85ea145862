package cart

import (
	"context"
	"testing"

	"github.com/ARNOB663/Food-Network/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price float64, stock int) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: "Fruits",
		Stock:    stock,
	}
}

func newTestManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return NewManager(store, "cart:test"), store
}

func TestAddToCart(t *testing.T) {
	t.Run("within stock increases total items by quantity", func(t *testing.T) {
		m, _ := newTestManager(t)

		m.AddToCart(product("1", 2.99, 5), 3)

		assert.Equal(t, 3, m.TotalItems())
		assert.InDelta(t, 8.97, m.TotalPrice(), 1e-9)
	})

	t.Run("exceeding stock leaves cart unchanged", func(t *testing.T) {
		m, _ := newTestManager(t)

		m.AddToCart(product("1", 2.99, 5), 6)

		assert.Empty(t, m.Lines())
		assert.Zero(t, m.TotalItems())
	})

	t.Run("merging past stock rejects the whole add", func(t *testing.T) {
		m, _ := newTestManager(t)
		p := product("1", 2.99, 5)

		m.AddToCart(p, 3)
		m.AddToCart(p, 3) // 3+3=6 > 5

		lines := m.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("merges into existing line up to stock", func(t *testing.T) {
		m, _ := newTestManager(t)
		p := product("1", 2.99, 5)

		m.AddToCart(p, 3)
		m.AddToCart(p, 2)

		lines := m.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		m, _ := newTestManager(t)

		m.AddToCart(product("a", 1, 10), 1)
		m.AddToCart(product("b", 1, 10), 1)
		m.AddToCart(product("c", 1, 10), 1)
		m.AddToCart(product("b", 1, 10), 1)

		lines := m.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, "a", lines[0].Product.ID)
		assert.Equal(t, "b", lines[1].Product.ID)
		assert.Equal(t, "c", lines[2].Product.ID)
		assert.Equal(t, 2, lines[1].Quantity)
	})

	t.Run("non-positive quantity defaults to one", func(t *testing.T) {
		m, _ := newTestManager(t)

		m.AddToCart(product("1", 2.99, 5), 0)

		assert.Equal(t, 1, m.TotalItems())
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Run("removes matching line", func(t *testing.T) {
		m, _ := newTestManager(t)
		m.AddToCart(product("1", 2.99, 5), 2)
		m.AddToCart(product("2", 1.50, 5), 1)

		m.RemoveFromCart("1")

		lines := m.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "2", lines[0].Product.ID)
	})

	t.Run("is idempotent", func(t *testing.T) {
		m, _ := newTestManager(t)
		m.AddToCart(product("1", 2.99, 5), 2)

		m.RemoveFromCart("1")
		once := m.Lines()
		m.RemoveFromCart("1")

		assert.Equal(t, once, m.Lines())
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("sets quantity exactly", func(t *testing.T) {
		m, _ := newTestManager(t)
		m.AddToCart(product("1", 2.99, 5), 2)

		m.UpdateQuantity("1", 4)

		assert.Equal(t, 4, m.Lines()[0].Quantity)
	})

	t.Run("zero is equivalent to remove", func(t *testing.T) {
		m1, _ := newTestManager(t)
		m2, _ := newTestManager(t)
		p := product("1", 2.99, 5)
		m1.AddToCart(p, 2)
		m2.AddToCart(p, 2)

		m1.UpdateQuantity("1", 0)
		m2.RemoveFromCart("1")

		assert.Equal(t, m2.Lines(), m1.Lines())
	})

	t.Run("exceeding stock is a no-op", func(t *testing.T) {
		m, _ := newTestManager(t)
		m.AddToCart(product("1", 2.99, 5), 2)

		m.UpdateQuantity("1", 6)

		assert.Equal(t, 2, m.Lines()[0].Quantity)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		m, _ := newTestManager(t)
		m.AddToCart(product("1", 2.99, 5), 2)

		m.UpdateQuantity("missing", 3)

		assert.Equal(t, 2, m.TotalItems())
	})
}

func TestTotals(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddToCart(product("1", 2.99, 10), 3)
	m.AddToCart(product("2", 4.49, 10), 2)
	m.UpdateQuantity("2", 4)

	assert.Equal(t, 7, m.TotalItems())
	assert.InDelta(t, 3*2.99+4*4.49, m.TotalPrice(), 1e-9)
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, "cart:u1")
	m.AddToCart(product("1", 2.99, 5), 3)
	m.AddToCart(product("2", 4.49, 8), 2)
	m.Flush()

	reloaded := NewManager(store, "cart:u1")

	assert.Equal(t, m.Lines(), reloaded.Lines())
	assert.Equal(t, m.TotalItems(), reloaded.TotalItems())
	assert.InDelta(t, m.TotalPrice(), reloaded.TotalPrice(), 1e-9)
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "cart:u1", "{not json"))

	m := NewManager(store, "cart:u1")

	assert.Empty(t, m.Lines())
}

func TestClearCartPersistsEmptySnapshot(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, "cart:u1")
	m.AddToCart(product("1", 2.99, 5), 3)

	m.ClearCart()
	m.Flush()

	// The key stays present: clearing persists an empty snapshot.
	raw, err := store.Get(context.Background(), "cart:u1")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", raw)
}

func TestResetCartRemovesSnapshotKey(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, "cart:u1")
	m.AddToCart(product("1", 2.99, 5), 1)
	m.AddToCart(product("2", 1.99, 5), 1)
	m.Flush()

	m.ResetCart()
	m.Flush()

	assert.Empty(t, m.Lines())
	_, err := store.Get(context.Background(), "cart:u1")
	assert.ErrorIs(t, err, ErrSnapshotMissing)

	// A new session hydrates empty, like a fresh login after logout.
	next := NewManager(store, "cart:u1")
	assert.Empty(t, next.Lines())
}

func TestRegistry(t *testing.T) {
	store := NewMemoryStore()
	r := NewRegistry(store)

	m := r.ForUser("u1")
	m.AddToCart(product("1", 2.99, 5), 2)
	m.Flush()

	assert.Same(t, m, r.ForUser("u1"), "same manager per user")
	assert.NotSame(t, m, r.ForUser("u2"), "distinct manager per user")

	r.Reset("u1")
	_, err := store.Get(context.Background(), "cart:u1")
	assert.ErrorIs(t, err, ErrSnapshotMissing)
	assert.Empty(t, r.ForUser("u1").Lines())
}

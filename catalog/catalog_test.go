package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/ARNOB663/Food-Network/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	products []models.Product
	err      error
}

func (s *stubSource) All(ctx context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func (s *stubSource) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubSource) ByID(ctx context.Context, id string) (models.Product, error) {
	if s.err != nil {
		return models.Product{}, s.err
	}
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

var remoteSet = []models.Product{
	{ID: "r1", Name: "Remote Mango", Category: "Fruits", Description: "Sweet remote mango", Price: 1.99, Stock: 7},
	{ID: "r2", Name: "Remote Kale", Category: "Vegetables", Description: "Leafy", Price: 2.49, Stock: 4},
}

func TestGetAllProducts(t *testing.T) {
	t.Run("serves the source set", func(t *testing.T) {
		svc := NewService(&stubSource{products: remoteSet})

		got := svc.GetAllProducts(context.Background())

		assert.Equal(t, remoteSet, got)
	})

	t.Run("empty source falls back to sample set", func(t *testing.T) {
		svc := NewService(&stubSource{})

		got := svc.GetAllProducts(context.Background())

		assert.Equal(t, SampleProducts, got)
	})

	t.Run("source error falls back to sample set", func(t *testing.T) {
		svc := NewService(&stubSource{err: errors.New("connection refused")})

		got := svc.GetAllProducts(context.Background())

		assert.Equal(t, SampleProducts, got)
	})
}

func TestGetProductsByCategory(t *testing.T) {
	t.Run("serves source matches", func(t *testing.T) {
		svc := NewService(&stubSource{products: remoteSet})

		got := svc.GetProductsByCategory(context.Background(), "Fruits")

		require.Len(t, got, 1)
		assert.Equal(t, "r1", got[0].ID)
	})

	t.Run("empty source result filters fallback case-insensitively", func(t *testing.T) {
		svc := NewService(&stubSource{})

		got := svc.GetProductsByCategory(context.Background(), "fruits")

		require.NotEmpty(t, got)
		for _, p := range got {
			assert.Equal(t, "Fruits", p.Category)
		}
	})

	t.Run("unknown category yields nothing", func(t *testing.T) {
		svc := NewService(&stubSource{})

		assert.Empty(t, svc.GetProductsByCategory(context.Background(), "Hardware"))
	})
}

func TestGetProductByID(t *testing.T) {
	t.Run("serves the source record", func(t *testing.T) {
		svc := NewService(&stubSource{products: remoteSet})

		got, ok := svc.GetProductByID(context.Background(), "r2")

		require.True(t, ok)
		assert.Equal(t, "Remote Kale", got.Name)
	})

	t.Run("absent id checks the fallback set", func(t *testing.T) {
		svc := NewService(&stubSource{products: remoteSet})

		got, ok := svc.GetProductByID(context.Background(), "1")

		require.True(t, ok)
		assert.Equal(t, "Fresh Organic Bananas", got.Name)
	})

	t.Run("source error checks the fallback set", func(t *testing.T) {
		svc := NewService(&stubSource{err: errors.New("connection refused")})

		got, ok := svc.GetProductByID(context.Background(), "1")

		require.True(t, ok)
		assert.Equal(t, "Fresh Organic Bananas", got.Name)
	})

	t.Run("unknown everywhere reports not found", func(t *testing.T) {
		svc := NewService(&stubSource{})

		_, ok := svc.GetProductByID(context.Background(), "nope")

		assert.False(t, ok)
	})
}

func TestSearchProducts(t *testing.T) {
	t.Run("matches name or description case-insensitively", func(t *testing.T) {
		svc := NewService(&stubSource{products: remoteSet})

		byName := svc.SearchProducts(context.Background(), "MANGO")
		byDescription := svc.SearchProducts(context.Background(), "leafy")

		require.Len(t, byName, 1)
		assert.Equal(t, "r1", byName[0].ID)
		require.Len(t, byDescription, 1)
		assert.Equal(t, "r2", byDescription[0].ID)
	})

	t.Run("source error searches the fallback set", func(t *testing.T) {
		svc := NewService(&stubSource{err: errors.New("connection refused")})

		got := svc.SearchProducts(context.Background(), "banana")

		require.NotEmpty(t, got)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("no match yields nothing", func(t *testing.T) {
		svc := NewService(&stubSource{})

		assert.Empty(t, svc.SearchProducts(context.Background(), "zzzz"))
	})
}

func TestCategories(t *testing.T) {
	t.Run("distinct sorted source categories", func(t *testing.T) {
		svc := NewService(&stubSource{products: remoteSet})

		assert.Equal(t, []string{"Fruits", "Vegetables"}, svc.Categories(context.Background()))
	})

	t.Run("fallback categories when source empty", func(t *testing.T) {
		svc := NewService(&stubSource{})

		got := svc.Categories(context.Background())

		assert.Contains(t, got, "Fruits")
		assert.Contains(t, got, "Dairy")
		assert.Contains(t, got, "Pantry")
	})
}

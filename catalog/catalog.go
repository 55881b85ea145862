package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/ARNOB663/Food-Network/models"
	"github.com/ARNOB663/Food-Network/pkg/logx"
)

// ErrNotFound is returned by a Source when a product id has no record. The
// service treats it like any other source failure and falls back.
var ErrNotFound = errors.New("catalog: product not found")

// Source is the primary product source. Implementations may return an empty
// slice or an error; the Service masks both with the embedded sample set.
type Source interface {
	All(ctx context.Context) ([]models.Product, error)
	ByCategory(ctx context.Context, category string) ([]models.Product, error)
	ByID(ctx context.Context, id string) (models.Product, error)
}

// Service resolves products from the primary source and degrades to the
// fallback dataset on empty results or source failure. No operation ever
// fails outward.
type Service struct {
	source   Source
	fallback []models.Product
}

func NewService(source Source) *Service {
	return &Service{source: source, fallback: SampleProducts}
}

func (s *Service) GetAllProducts(ctx context.Context) []models.Product {
	products, err := s.source.All(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("catalog source failed, serving fallback set")
		return s.fallbackAll()
	}
	if len(products) == 0 {
		logx.Info().Msg("catalog source empty, serving fallback set")
		return s.fallbackAll()
	}
	return products
}

func (s *Service) GetProductsByCategory(ctx context.Context, category string) []models.Product {
	products, err := s.source.ByCategory(ctx, category)
	if err != nil {
		logx.Error().Err(err).Str("category", category).Msg("catalog source failed, filtering fallback set")
		return s.fallbackByCategory(category)
	}
	if len(products) == 0 {
		return s.fallbackByCategory(category)
	}
	return products
}

func (s *Service) GetProductByID(ctx context.Context, id string) (models.Product, bool) {
	product, err := s.source.ByID(ctx, id)
	if err == nil {
		return product, true
	}
	if !errors.Is(err, ErrNotFound) {
		logx.Error().Err(err).Str("product_id", id).Msg("catalog source failed, checking fallback set")
	}
	for _, p := range s.fallback {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Service) SearchProducts(ctx context.Context, term string) []models.Product {
	products, err := s.source.All(ctx)
	if err != nil {
		logx.Error().Err(err).Str("term", term).Msg("catalog source failed, searching fallback set")
		return filterByTerm(s.fallback, term)
	}
	if len(products) == 0 {
		return filterByTerm(s.fallback, term)
	}
	return filterByTerm(products, term)
}

// Categories returns the distinct category names, ascending. Fallback
// categories are served when the source is empty or failing.
func (s *Service) Categories(ctx context.Context) []string {
	return distinctCategories(s.GetAllProducts(ctx))
}

func (s *Service) fallbackAll() []models.Product {
	out := make([]models.Product, len(s.fallback))
	copy(out, s.fallback)
	return out
}

func (s *Service) fallbackByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range s.fallback {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

func filterByTerm(products []models.Product, term string) []models.Product {
	needle := strings.ToLower(term)
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

func distinctCategories(products []models.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

package catalog

import (
	"context"
	"errors"

	"github.com/ARNOB663/Food-Network/models"
	"gorm.io/gorm"
)

// GormSource reads products from the managed Postgres catalog.
type GormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormSource) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormSource) ByID(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

// Seed inserts the sample dataset when the products table is empty, so a
// fresh database serves the same catalog the fallback does.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(sampleCopy()).Error
}

// Reseed wipes the products table and reinserts the sample dataset.
func Reseed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Create(sampleCopy()).Error
	})
}

// sampleCopy keeps gorm's create-time mutations off the fallback dataset.
func sampleCopy() []models.Product {
	out := make([]models.Product, len(SampleProducts))
	copy(out, SampleProducts)
	return out
}

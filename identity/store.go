package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/ARNOB663/Food-Network/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("identity: user not found")
	ErrEmailExists  = errors.New("identity: email already registered")
)

// UserStore is the remote account store behind the identity manager.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	ByEmail(ctx context.Context, email string) (models.User, error)
	ByID(ctx context.Context, id string) (models.User, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
}

// GormUserStore keeps accounts in the users table.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(ctx context.Context, user models.User) error {
	err := s.db.WithContext(ctx).Create(&user).Error
	if err != nil && isUniqueViolation(err) {
		return ErrEmailExists
	}
	return err
}

func (s *GormUserStore) ByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (s *GormUserStore) ByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (s *GormUserStore) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	// Postgres unique_violation is SQLSTATE 23505; match on the message so
	// the check does not depend on driver error types.
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}

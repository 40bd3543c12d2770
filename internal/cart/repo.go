package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartRecord is the persisted shape of a session cart. Items are stored as a
// JSON document; the cart is always read and written whole.
type CartRecord struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	SessionKey string    `gorm:"column:session_key;uniqueIndex;not null"`
	Currency   string    `gorm:"column:currency;not null"`
	Items      []Item    `gorm:"column:items;type:jsonb;serializer:json"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// TableName pins the storage table.
func (CartRecord) TableName() string {
	return "cart_records"
}

// GormStore persists carts through the shared GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps the connection in a cart Store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context, sessionKey string) (*Cart, error) {
	var record CartRecord
	err := s.db.WithContext(ctx).
		Where("session_key = ?", sessionKey).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	return &Cart{
		ID:         record.ID,
		SessionKey: record.SessionKey,
		Items:      record.Items,
		Currency:   record.Currency,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}, nil
}

func (s *GormStore) Save(ctx context.Context, cart *Cart) error {
	record := CartRecord{
		ID:         cart.ID,
		SessionKey: cart.SessionKey,
		Currency:   cart.Currency,
		Items:      cart.Snapshot(),
		CreatedAt:  cart.CreatedAt,
		UpdatedAt:  cart.UpdatedAt,
	}
	res := s.db.WithContext(ctx).
		Model(&CartRecord{}).
		Where("session_key = ?", record.SessionKey).
		Select("currency", "items", "updated_at").
		Updates(&record)
	if res.Error != nil {
		return fmt.Errorf("saving cart: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return fmt.Errorf("saving cart: %w", err)
		}
	}
	return nil
}

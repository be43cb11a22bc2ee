package accounts

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound means the user has no account record yet. That is a valid
// lifecycle state (billing setup pending), not a failure.
var ErrNotFound = errors.New("account not found")

// Store is the persistence boundary for account records. Writes are
// last-write-wins; each caller only touches the fields it owns.
type Store interface {
	Get(ctx context.Context, userID uint) (*Account, error)
	Update(ctx context.Context, userID uint, fields map[string]interface{}) error
	Insert(ctx context.Context, acct *Account) error
}

type GormStore struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(ctx context.Context, userID uint) (*Account, error) {
	var acct Account
	err := s.DB.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func (s *GormStore) Update(ctx context.Context, userID uint, fields map[string]interface{}) error {
	return s.DB.WithContext(ctx).
		Model(&Account{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

func (s *GormStore) Insert(ctx context.Context, acct *Account) error {
	return s.DB.WithContext(ctx).Create(acct).Error
}

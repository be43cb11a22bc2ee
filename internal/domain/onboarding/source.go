package onboarding

import (
	"context"
	"errors"

	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/bookings"
	"link2pay-backend/internal/domain/catalog"
	"link2pay-backend/internal/domain/invoices"

	"gorm.io/gorm"
)

// GormSource answers step predicates with existence queries scoped to the
// merchant's own rows.
type GormSource struct {
	DB *gorm.DB
}

func NewSource(db *gorm.DB) *GormSource {
	return &GormSource{DB: db}
}

func (s *GormSource) HasProduct(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("user_id = ?", userID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (s *GormSource) HasInvoice(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&invoices.Invoice{}).
		Where("user_id = ?", userID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (s *GormSource) HasAvailability(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&bookings.AvailabilitySetting{}).
		Where("user_id = ?", userID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (s *GormSource) Profile(ctx context.Context, userID uint) (ProfileFields, error) {
	var acct accounts.Account
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProfileFields{}, nil
	}
	if err != nil {
		return ProfileFields{}, err
	}

	handle := ""
	if acct.StoreHandle != nil {
		handle = *acct.StoreHandle
	}
	return ProfileFields{
		BusinessName:     acct.BusinessName,
		StoreHandle:      handle,
		WhatsAppNumber:   acct.WhatsAppNumber,
		HasPaymentMethod: acct.HasPaymentMethod(),
	}, nil
}

package store

import (
	"encoding/json"
	"time"
)

// StoreSection is one block of the merchant's storefront page (hero, product
// grid, booking widget, contact). Ordering is the merchant's arrangement.
type StoreSection struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	SortIndex int `gorm:"not null;default:0;index" json:"sort_index"`

	Type    string          `gorm:"not null;index" json:"type"`
	Visible bool            `gorm:"not null;default:true" json:"visible"`
	Props   json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"props"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package catalog

import "time"

type Product struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;index"`
	Name     string
	PriceZAR float64 `gorm:"column:price_zar"`
	ImageURL string
	InStock  bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

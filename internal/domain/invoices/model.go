package invoices

import "time"

const (
	StatusDraft = "draft"
	StatusSent  = "sent"
	StatusPaid  = "paid"
)

type Invoice struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;index"`
	Number string `gorm:"not null;uniqueIndex:idx_invoices_number"`

	ClientName  string
	ClientPhone string
	AmountZAR   float64 `gorm:"column:amount_zar"`
	Status      string  `gorm:"type:varchar(10);not null;default:'draft'"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	SentAt *time.Time
	PaidAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type InvoiceItem struct {
	ID          uint `gorm:"primaryKey"`
	InvoiceID   uint `gorm:"not null;index"`
	Description string
	Quantity    int     `gorm:"not null;default:1"`
	UnitZAR     float64 `gorm:"column:unit_zar"`
}

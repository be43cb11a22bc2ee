package bookings

import "time"

// AvailabilitySetting is one weekday slot window for a merchant offering
// bookings. At least one row existing is what marks booking setup complete.
type AvailabilitySetting struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Weekday   int    `gorm:"not null"`        // 0 = Sunday
	OpensAt   string `gorm:"type:varchar(5)"` // "09:00"
	ClosesAt  string `gorm:"type:varchar(5)"`
	SlotMins  int    `gorm:"not null;default:30"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Booking struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Reference string `gorm:"not null;uniqueIndex:idx_bookings_reference"`

	ClientName  string
	ClientPhone string
	StartsAt    time.Time
	DurationMin int
	Status      string `gorm:"type:varchar(12);not null;default:'confirmed'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

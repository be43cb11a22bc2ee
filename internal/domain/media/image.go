package media

import "time"

// Image is an uploaded asset (store logo, product photo) hosted on Cloudinary.
type Image struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"-"`
	Kind     string `gorm:"type:varchar(20);not null;index" json:"kind"` // logo | product
	PublicID string `gorm:"not null" json:"public_id"`
	URL      string `gorm:"not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

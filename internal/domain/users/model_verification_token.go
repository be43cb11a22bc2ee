package users

import "time"

// VerificationToken backs the email verification link. One outstanding token
// per user; consumed (deleted) on successful verification.
type VerificationToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Token     string `gorm:"uniqueIndex"`
	Type      string `gorm:"index"` // email_verification
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry. Tokens without an
// expiry never expire.
func (t VerificationToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

package entity

import "time"

// VerificationToken holds the single active email verification code for an
// address. Issuing a new code replaces the previous one; a successful match
// deletes the row (single use).
type VerificationToken struct {
	Email     string    `gorm:"primaryKey;size:100" json:"email"`
	Token     string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

func (VerificationToken) TableName() string {
	return "verification_tokens"
}

// IsExpired reports whether the code is past its expiry.
func (v *VerificationToken) IsExpired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

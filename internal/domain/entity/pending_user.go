package entity

import (
	"time"

	"gorm.io/gorm"
)

// PendingUser is a candidate account staged until the email is confirmed.
// At most one pending registration may exist per email; the derived ID must
// not collide with an existing permanent account.
type PendingUser struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
	Email    string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Role     string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}

func (PendingUser) TableName() string {
	return "pending_users"
}

// BeforeSave hashes the candidate password so plaintext never reaches storage.
func (p *PendingUser) BeforeSave(tx *gorm.DB) error {
	hashed, err := hashPasswordIfPlain(p.Password)
	if err != nil {
		return err
	}
	p.Password = hashed
	return nil
}

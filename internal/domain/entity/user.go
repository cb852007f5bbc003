package entity

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Account roles supported by the platform.
const (
	RoleShopkeeper = "shopkeeper"
	RoleLabour     = "labour"
)

// IsValidRole reports whether role is one of the supported account roles.
func IsValidRole(role string) bool {
	return role == RoleShopkeeper || role == RoleLabour
}

// User represents a verified, permanent account.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;not null" json:"username"`
	Email    string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
	Role     string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the GORM table name.
func (User) TableName() string {
	return "users"
}

// BeforeSave hashes the password unless it is already a bcrypt hash.
// Promotion copies an already-hashed password from pending_users, so the
// prefix check prevents double hashing.
func (u *User) BeforeSave(tx *gorm.DB) error {
	hashed, err := hashPasswordIfPlain(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// DeriveUserID maps an email address to a stable numeric account identifier.
// Only the local part (before '@') participates. The rolling hash is DJB2
// truncated to 32 bits; different emails may collide, which surfaces as a
// primary-key violation at insert time.
func DeriveUserID(email string) uint {
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}

	h := int32(5381)
	for i := 0; i < len(local); i++ {
		h = h*33 + int32(local[i])
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return uint(v)
}

func hashPasswordIfPlain(password string) (string, error) {
	if len(password) == 0 ||
		strings.HasPrefix(password, "$2a$") ||
		strings.HasPrefix(password, "$2b$") ||
		strings.HasPrefix(password, "$2y$") {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

package model

import (
	"strings"
	"time"
)

type AdminUser struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Username    string     `json:"username" gorm:"uniqueIndex;not null"`
	Password    string     `json:"-" gorm:"not null"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HasHashedPassword şifrenin bcrypt hash olup olmadığını kontrol eder.
// Eski kurulumlarda şifreler düz metin olarak saklanıyordu.
func (u *AdminUser) HasHashedPassword() bool {
	return strings.HasPrefix(u.Password, "$2a$") ||
		strings.HasPrefix(u.Password, "$2b$") ||
		strings.HasPrefix(u.Password, "$2y$")
}

// Session admin oturumu
type Session struct {
	Token     string    `json:"token" gorm:"primaryKey;size:64"`
	Username  string    `json:"username" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

package models

import "time"

type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// PasswordReset is a pending one-time passcode, one row per email. A new
// forgot-password request overwrites the previous code; consuming a code
// deletes the row. Expiry is checked at read time, strictly.
type PasswordReset struct {
	Email     string    `gorm:"primaryKey"`
	Code      string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

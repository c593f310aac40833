package models

import "time"

// User represents the users table in database. Rows are created once at
// signup and only ever read afterwards, so there is no UpdatedAt.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Surname      string `gorm:"not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

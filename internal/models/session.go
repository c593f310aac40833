package models

import "time"

// Session is a server-side login session. The browser carries a signed token
// naming the row; logout revokes the row so the token stops working even if
// the cookie survives.
type Session struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null"`
	User      User `gorm:"foreignKey:UserID"`
	ExpiresAt time.Time
	Revoked   bool `gorm:"default:false"`
	CreatedAt time.Time
}

package models

import "time"

// Cafe is a directory entry. Names are stored uppercased. ImageFile, when
// set, is a path relative to the uploads directory and the file is written
// by the same request that inserts the row.
type Cafe struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	CityID      uint   `gorm:"not null"`
	City        City   `gorm:"foreignKey:CityID"`
	WebsiteURL  string `gorm:"unique;not null"`
	OpeningTime string `gorm:"not null"`
	ClosingTime string `gorm:"not null"`
	Address     string `gorm:"not null"`
	Rating      string `gorm:"not null"`
	Wifi        string `gorm:"not null"`
	PowerOutlet string `gorm:"not null"`
	ImageFile   *string
	CreatedAt   time.Time
}

package models

// City is reference data: rows are seeded at startup, no endpoint writes them.
type City struct {
	ID       uint   `gorm:"primaryKey"`
	CityName string `gorm:"not null"`
	Cafes    []Cafe `gorm:"foreignKey:CityID"`
}

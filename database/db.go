package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mahmina/cafe-cortex/internal/models"
)

// ConnectDB opens the PostgreSQL connection using GORM. TranslateError is
// on so unique-constraint violations surface as gorm.ErrDuplicatedKey.
func ConnectDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func ProcessMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.City{},
		&models.Cafe{},
		&models.Session{},
	)
}

// defaultCities is the reference data the directory starts with. Cities
// are managed out of band; no endpoint writes this table.
var defaultCities = []string{
	"Berlin",
	"Hamburg",
	"Leipzig",
	"Munich",
}

// SeedCities inserts the starter city list when the table is empty.
func SeedCities(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.City{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	cities := make([]models.City, 0, len(defaultCities))
	for _, name := range defaultCities {
		cities = append(cities, models.City{CityName: name})
	}
	return db.Create(&cities).Error
}

package stores

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mahmina/cafe-cortex/internal/models"
)

// CafeStore abstracts café and city persistence. Cities are read-only
// reference data; cafés are insert-only.
type CafeStore interface {
	// ListCities returns all cities ordered by name, without cafés.
	ListCities() ([]models.City, error)
	// ListCitiesWithCafes returns all cities ordered by name with their
	// cafés eagerly loaded.
	ListCitiesWithCafes() ([]models.City, error)
	// CreateCafe persists a new café. Returns ErrDuplicate when the
	// website URL is already taken.
	CreateCafe(cafe *models.Cafe) error
}

// GormCafeStore implements CafeStore using GORM.
type GormCafeStore struct{ DB *gorm.DB }

func (s *GormCafeStore) ListCities() ([]models.City, error) {
	var cities []models.City
	if err := s.DB.Order("city_name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (s *GormCafeStore) ListCitiesWithCafes() ([]models.City, error) {
	var cities []models.City
	if err := s.DB.Preload("Cafes").Order("city_name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (s *GormCafeStore) CreateCafe(cafe *models.Cafe) error {
	if err := s.DB.Create(cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

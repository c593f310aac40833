package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Mahmina/cafe-cortex/internal/models"
)

type CafeStore struct{ mock.Mock }

func (m *CafeStore) ListCities() ([]models.City, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.City), args.Error(1)
}

func (m *CafeStore) ListCitiesWithCafes() ([]models.City, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.City), args.Error(1)
}

func (m *CafeStore) CreateCafe(cafe *models.Cafe) error { return m.Called(cafe).Error(0) }

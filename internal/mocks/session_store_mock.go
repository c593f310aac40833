package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Mahmina/cafe-cortex/internal/models"
)

type SessionStore struct{ mock.Mock }

func (m *SessionStore) CreateSession(s *models.Session) error {
	return m.Called(s).Error(0)
}

func (m *SessionStore) FindLive(id uint, now time.Time) (*models.Session, error) {
	args := m.Called(id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *SessionStore) Revoke(id uint) error { return m.Called(id).Error(0) }

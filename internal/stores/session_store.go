package stores

import (
	"time"

	"gorm.io/gorm"

	"github.com/Mahmina/cafe-cortex/internal/models"
)

// SessionStore abstracts login-session persistence.
type SessionStore interface {
	CreateSession(s *models.Session) error
	// FindLive returns the session with the given id if it has not been
	// revoked and has not expired as of now, with the user preloaded.
	FindLive(id uint, now time.Time) (*models.Session, error)
	// Revoke marks the session unusable. Revoking an already revoked or
	// unknown session is not an error.
	Revoke(id uint) error
}

// GormSessionStore implements SessionStore using GORM.
type GormSessionStore struct{ DB *gorm.DB }

func (s *GormSessionStore) CreateSession(sess *models.Session) error {
	return s.DB.Create(sess).Error
}

func (s *GormSessionStore) FindLive(id uint, now time.Time) (*models.Session, error) {
	var sess models.Session
	err := s.DB.Preload("User").
		Where("id = ? AND revoked = ? AND expires_at > ?", id, false, now).
		First(&sess).Error
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *GormSessionStore) Revoke(id uint) error {
	return s.DB.Model(&models.Session{}).
		Where("id = ?", id).
		Update("revoked", true).Error
}

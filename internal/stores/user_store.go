package stores

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mahmina/cafe-cortex/internal/models"
)

// UserStore abstracts user persistence.
type UserStore interface {
	// FindByEmail returns a user if it exists, or ErrNotFound.
	FindByEmail(email string) (*models.User, error)
	// CreateUser persists a new user. Returns ErrDuplicate when the email
	// is already registered.
	CreateUser(u *models.User) error
	GetByID(id uint) (*models.User, error)
}

var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate reports a unique-constraint violation surfaced by the store.
var ErrDuplicate = errors.New("duplicate record")

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) CreateUser(u *models.User) error {
	if err := s.DB.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormUserStore) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Mahmina/cafe-cortex/internal/token"
)

type SessionTokenService struct{ mock.Mock }

func (m *SessionTokenService) Sign(sessionID, userID uint, ttl time.Duration) (string, error) {
	args := m.Called(sessionID, userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *SessionTokenService) Parse(raw string) (*token.SessionClaims, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.SessionClaims), args.Error(1)
}

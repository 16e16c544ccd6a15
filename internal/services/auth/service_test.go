package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kumkom/internal/dependencies/mocks"
	"github.com/mcoot/kumkom/internal/storage/memory"
	"github.com/mcoot/kumkom/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

// CreateGuestPlayer tests

func (s *ServiceSuite) TestCreateGuestPlayerSucceeds() {
	session, err := s.service.CreateGuestPlayer(s.ctx, "สมชาย")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("สมชาย", session.Player.DisplayName)
	s.NotEmpty(session.PlayerID)
	s.Equal(s.clock.Now().Add(24*time.Hour), session.ExpiresAt)
}

func (s *ServiceSuite) TestCreateGuestPlayerPersistsPlayer() {
	session, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	player, err := s.storage.GetPlayer(s.ctx, session.PlayerID)
	s.Require().NoError(err)
	s.Equal("Alice", player.DisplayName)
}

func (s *ServiceSuite) TestCreateGuestPlayerTrimsName() {
	session, err := s.service.CreateGuestPlayer(s.ctx, "  Alice  ")
	s.Require().NoError(err)
	s.Equal("Alice", session.Player.DisplayName)
}

func (s *ServiceSuite) TestCreateGuestPlayerRejectsBadNames() {
	_, err := s.service.CreateGuestPlayer(s.ctx, "   ")
	s.ErrorIs(err, ErrInvalidDisplayName)

	_, err = s.service.CreateGuestPlayer(s.ctx, strings.Repeat("ก", MaxDisplayNameLength+1))
	s.ErrorIs(err, ErrInvalidDisplayName)
}

func (s *ServiceSuite) TestCreateGuestPlayerIssuesDistinctIdentities() {
	a, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")
	b, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	s.NotEqual(a.PlayerID, b.PlayerID)
	s.NotEqual(a.Token, b.Token)
}

// ValidateSession tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	session, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.PlayerID, validated.PlayerID)
}

func (s *ServiceSuite) TestValidateSessionFailsWithInvalidToken() {
	_, err := s.service.ValidateSession("nonexistent")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsWhenExpired() {
	session, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

// InvalidateSession tests

func (s *ServiceSuite) TestInvalidateSessionRemovesSession() {
	session, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	s.service.InvalidateSession(session.Token)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSessionNoopForUnknownToken() {
	s.NotPanics(func() { s.service.InvalidateSession("nonexistent") })
}

// GetPlayer tests

func (s *ServiceSuite) TestGetPlayerSucceeds() {
	session, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	player, err := s.service.GetPlayer(session.Token)
	s.Require().NoError(err)
	s.Equal("Alice", player.DisplayName)
}

func (s *ServiceSuite) TestGetPlayerFailsWithInvalidToken() {
	_, err := s.service.GetPlayer("nonexistent")
	s.ErrorIs(err, ErrInvalidSession)
}

// CleanExpiredSessions tests

func (s *ServiceSuite) TestCleanExpiredSessionsRemovesExpired() {
	session1, _ := s.service.CreateGuestPlayer(s.ctx, "Alice")

	s.clock.Advance(25 * time.Hour)

	session2, _ := s.service.CreateGuestPlayer(s.ctx, "Bob")

	s.Equal(1, s.service.CleanExpiredSessions())

	_, err := s.service.ValidateSession(session1.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(session2.Token)
	s.NoError(err)
}

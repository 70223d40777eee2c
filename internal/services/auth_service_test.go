package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"acceso-portal/internal/notifier"
	"acceso-portal/internal/repository"
	portal_errors "acceso-portal/pkg/errors"
	"acceso-portal/pkg/logger"
)

type fakeNotifier struct {
	loginEvents    []notifier.LoginEvent
	registerEvents []notifier.RegistrationEvent
	loginErr       error
	registerErr    error
}

func (f *fakeNotifier) NotifyLogin(_ context.Context, ev notifier.LoginEvent) error {
	f.loginEvents = append(f.loginEvents, ev)
	return f.loginErr
}

func (f *fakeNotifier) NotifyRegistration(_ context.Context, ev notifier.RegistrationEvent) error {
	f.registerEvents = append(f.registerEvents, ev)
	return f.registerErr
}

type AuthServiceSuite struct {
	suite.Suite
	repo     *repository.MemoryUserRepository
	notifier *fakeNotifier
	service  *AuthService
}

func (s *AuthServiceSuite) SetupTest() {
	s.repo = repository.NewMemoryUserRepository()
	s.notifier = &fakeNotifier{}
	s.service = NewAuthService(s.repo, s.notifier, nil, logger.NewNop())
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) register(email, password string) int64 {
	id, err := s.service.Register(context.Background(), RegisterInput{
		Email:    email,
		Password: password,
	})
	s.Require().NoError(err)
	return id
}

func (s *AuthServiceSuite) TestRegisterAssignsIncreasingIDs() {
	s.Equal(int64(1), s.register("a@x.com", "p1"))
	s.Equal(int64(2), s.register("b@x.com", "p2"))
	s.Equal(int64(3), s.register("c@x.com", "p3"))

	count, err := s.service.Count(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(3), count)
	s.Len(s.notifier.registerEvents, 3)
}

func (s *AuthServiceSuite) TestRegisterAppliesFallbacks() {
	s.register("a@x.com", "p1")

	users, err := s.service.Users(context.Background())
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("not applicable", users[0].FirstName)
	s.Equal("not applicable", users[0].LastName)
	s.Equal("not applicable", users[0].Phone)
	s.Equal("no code", users[0].RegistrationCode)
}

func (s *AuthServiceSuite) TestRegisterDuplicateEmail() {
	s.register("a@x.com", "p1")

	_, err := s.service.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "p2"})
	s.Require().ErrorIs(err, portal_errors.ErrAlreadyExists)

	count, cErr := s.service.Count(context.Background())
	s.Require().NoError(cErr)
	s.Equal(int64(1), count)
	// The rejected attempt must not emit a second alert.
	s.Len(s.notifier.registerEvents, 1)
}

func (s *AuthServiceSuite) TestRegisterMissingFieldsHasNoSideEffects() {
	for _, in := range []RegisterInput{
		{Password: "p1"},
		{Email: "a@x.com"},
		{},
	} {
		_, err := s.service.Register(context.Background(), in)
		s.Require().ErrorIs(err, portal_errors.ErrInvalidInput)
	}

	count, err := s.service.Count(context.Background())
	s.Require().NoError(err)
	s.Zero(count)
	s.Empty(s.notifier.registerEvents)
}

func (s *AuthServiceSuite) TestRegisterNotifierFailurePropagates() {
	s.notifier.registerErr = portal_errors.ErrNotifierFailed

	_, err := s.service.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "p1"})
	s.Require().ErrorIs(err, portal_errors.ErrNotifierFailed)

	// The record stays appended; only the alert failed.
	count, cErr := s.service.Count(context.Background())
	s.Require().NoError(cErr)
	s.Equal(int64(1), count)
}

func (s *AuthServiceSuite) TestRegisterNeverStoresPlaintextPassword() {
	s.register("a@x.com", "hunter2-secret")

	u, err := s.repo.GetByEmail(context.Background(), "a@x.com")
	s.Require().NoError(err)
	s.NotEmpty(u.PasswordHash)
	s.NotContains(u.PasswordHash, "hunter2-secret")
}

func (s *AuthServiceSuite) TestLoginMatch() {
	s.register("a@x.com", "p1")

	info, err := s.service.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "p1"})
	s.Require().NoError(err)
	s.Equal("a@x.com", info.Email)
	s.Equal(int64(1), info.ID)

	s.Require().Len(s.notifier.loginEvents, 1)
	s.True(s.notifier.loginEvents[0].Matched)
	s.Equal("a@x.com", s.notifier.loginEvents[0].Email)
}

func (s *AuthServiceSuite) TestLoginMismatch() {
	s.register("a@x.com", "p1")
	s.notifier.registerEvents = nil

	s.Run("wrong password", func() {
		_, err := s.service.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "wrong"})
		s.Require().ErrorIs(err, portal_errors.ErrUnauthorized)
	})

	s.Run("unknown email", func() {
		_, err := s.service.Login(context.Background(), LoginInput{Email: "nobody@x.com", Password: "p1"})
		s.Require().ErrorIs(err, portal_errors.ErrUnauthorized)
	})

	// One alert per validated attempt, match or not.
	s.Require().Len(s.notifier.loginEvents, 2)
	s.False(s.notifier.loginEvents[0].Matched)
	s.False(s.notifier.loginEvents[1].Matched)
}

func (s *AuthServiceSuite) TestLoginMissingFieldsSendsNothing() {
	s.register("a@x.com", "p1")
	s.notifier.loginEvents = nil

	for _, in := range []LoginInput{
		{Password: "p1"},
		{Email: "a@x.com"},
		{},
	} {
		_, err := s.service.Login(context.Background(), in)
		s.Require().ErrorIs(err, portal_errors.ErrInvalidInput)
	}
	s.Empty(s.notifier.loginEvents)
}

func (s *AuthServiceSuite) TestLoginNotifierFailureSuppressed() {
	s.register("a@x.com", "p1")
	s.notifier.loginErr = portal_errors.ErrNotifierFailed

	info, err := s.service.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "p1"})
	s.Require().NoError(err)
	s.Equal("a@x.com", info.Email)
}

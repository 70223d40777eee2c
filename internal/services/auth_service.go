package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"acceso-portal/internal/domain/user"
	"acceso-portal/internal/metrics"
	"acceso-portal/internal/notifier"
	"acceso-portal/internal/repository"
	portal_errors "acceso-portal/pkg/errors"
	"acceso-portal/pkg/logger"
)

// Notifier pushes portal alerts to the configured chat. The Telegram
// implementation lives in internal/notifier; tests substitute a fake.
type Notifier interface {
	NotifyLogin(ctx context.Context, ev notifier.LoginEvent) error
	NotifyRegistration(ctx context.Context, ev notifier.RegistrationEvent) error
}

type AuthService struct {
	userRepo repository.UserRepository
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewAuthService(userRepo repository.UserRepository, n Notifier, m *metrics.Metrics, l *logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		notifier: n,
		metrics:  m,
		logger:   l,
	}
}

type LoginInput struct {
	Email    string
	Password string
	Meta     notifier.ClientMeta
}

type RegisterInput struct {
	RegistrationCode string
	FirstName        string
	LastName         string
	Email            string
	Password         string
	PhoneCode        string
	Phone            string
	Meta             notifier.ClientMeta
}

type UserInfo struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	PhoneCode        string    `json:"phoneCode"`
	Phone            string    `json:"phone"`
	RegistrationCode string    `json:"registrationCode"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Login validates the pair against the store and emits exactly one alert,
// match or not. Alert delivery is awaited but never affects the outcome:
// a failed send is logged and the caller still gets the lookup result.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (UserInfo, error) {
	if err := validateLogin(in); err != nil {
		return UserInfo{}, err
	}

	matched := false
	u, err := s.userRepo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		matched = comparePassword(u.PasswordHash, in.Password) == nil
	case errors.Is(err, portal_errors.ErrNotFound):
		// Unknown email is reported exactly like a wrong password.
	default:
		return UserInfo{}, err
	}

	nErr := s.notifier.NotifyLogin(ctx, notifier.LoginEvent{
		Email:   in.Email,
		Matched: matched,
		Meta:    in.Meta,
	})
	if nErr != nil && s.logger != nil {
		s.logger.ErrorfCtx(ctx, "login alert not delivered: %s", nErr)
	}
	s.metrics.IncNotification("login", nErr)
	s.metrics.IncLoginAttempt(matched)

	if !matched {
		return UserInfo{}, portal_errors.ErrUnauthorized
	}
	return toUserInfo(u), nil
}

// Register appends a new record and emits one registration alert. The
// alert is required: a failed send surfaces to the caller, though the
// record stays appended.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (int64, error) {
	if err := validateRegister(in); err != nil {
		return 0, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	newUser := &user.User{
		FirstName:        fallback(in.FirstName, user.FallbackField),
		LastName:         fallback(in.LastName, user.FallbackField),
		Email:            in.Email,
		PasswordHash:     hash,
		PhoneCode:        fallback(in.PhoneCode, user.FallbackField),
		Phone:            fallback(in.Phone, user.FallbackField),
		RegistrationCode: fallback(in.RegistrationCode, user.FallbackCode),
		CreatedAt:        time.Now(),
	}

	id, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return 0, err
	}
	s.metrics.IncRegistrations()

	nErr := s.notifier.NotifyRegistration(ctx, notifier.RegistrationEvent{
		UserID:           id,
		FirstName:        newUser.FirstName,
		LastName:         newUser.LastName,
		Email:            newUser.Email,
		PhoneCode:        newUser.PhoneCode,
		Phone:            newUser.Phone,
		RegistrationCode: newUser.RegistrationCode,
		Meta:             in.Meta,
	})
	s.metrics.IncNotification("registration", nErr)
	if nErr != nil {
		if s.logger != nil {
			s.logger.ErrorfCtx(ctx, "registration alert not delivered: %s", nErr)
		}
		return 0, portal_errors.ErrNotifierFailed
	}

	return id, nil
}

func (s *AuthService) Users(ctx context.Context) ([]UserInfo, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]UserInfo, 0, len(users))
	for _, u := range users {
		result = append(result, toUserInfo(u))
	}
	return result, nil
}

func (s *AuthService) Count(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

func HTTPStatus(err error) int {
	switch {
	// A duplicate email is a client input error here, not a conflict.
	case errors.Is(err, portal_errors.ErrInvalidInput), errors.Is(err, portal_errors.ErrAlreadyExists):
		return 400
	case errors.Is(err, portal_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, portal_errors.ErrNotFound):
		return 404
	default:
		return 500
	}
}

func validateLogin(in LoginInput) error {
	if in.Email == "" || in.Password == "" {
		return portal_errors.ErrInvalidInput
	}
	return nil
}

func validateRegister(in RegisterInput) error {
	if in.Email == "" || in.Password == "" {
		return portal_errors.ErrInvalidInput
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func toUserInfo(u user.User) UserInfo {
	return UserInfo{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		PhoneCode:        u.PhoneCode,
		Phone:            u.Phone,
		RegistrationCode: u.RegistrationCode,
		CreatedAt:        u.CreatedAt,
	}
}

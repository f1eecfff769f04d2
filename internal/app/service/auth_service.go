package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
	recorder       ports.EventRecorder
	now            func() time.Time

	decoyOnce sync.Once
	decoyHash string
}

func NewAuthService(userRepository ports.UserRepository, hasher ports.PasswordHasher, recorder ports.EventRecorder) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		recorder:       recorderOrNoop(recorder),
		now:            time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	email := domain.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return domain.User{}, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(input.Password) < domain.MinPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password too short", domain.ErrInvalidInput)
	}
	if len(input.Password) > domain.MaxPasswordBytes {
		return domain.User{}, fmt.Errorf("%w: password too long", domain.ErrInvalidInput)
	}

	_, err := s.userRepository.FindByEmail(ctx, email)
	switch {
	case err == nil:
		s.recorder.AuthEvent("register", "duplicate")
		return domain.User{}, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrUserNotFound):
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepository.Create(ctx, domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         trimOptional(input.Name),
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			s.recorder.AuthEvent("register", "duplicate")
		}
		return domain.User{}, err
	}

	s.recorder.AuthEvent("register", "success")
	return user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, credentials domain.Credentials) (domain.User, error) {
	email := domain.NormalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		return domain.User{}, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, err
		}
		// Spend the same hashing effort as a real comparison.
		s.hasher.Verify(s.decoy(), credentials.Password)
		s.recorder.AuthEvent("login", "failure")
		return domain.User{}, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(user.PasswordHash, credentials.Password) {
		s.recorder.AuthEvent("login", "failure")
		return domain.User{}, domain.ErrInvalidCredentials
	}

	s.recorder.AuthEvent("login", "success")
	return user, nil
}

func (s *AuthService) Lookup(ctx context.Context, id uint64) (domain.User, error) {
	if id == 0 {
		return domain.User{}, domain.ErrUserNotFound
	}
	return s.userRepository.FindByID(ctx, id)
}

func (s *AuthService) decoy() string {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(strings.Repeat("x", domain.MinPasswordLength))
		if err == nil {
			s.decoyHash = hash
		}
	})
	return s.decoyHash
}

var _ ports.AuthService = (*AuthService)(nil)

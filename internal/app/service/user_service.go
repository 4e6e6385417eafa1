package service

import (
	"context"
	"errors"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	authService    ports.AuthService
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(userRepository ports.UserRepository, authService ports.AuthService) *UserService {
	return &UserService{userRepository: userRepository, authService: authService}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, string, error) {
	hash, err := s.authService.HashPassword(input.Password)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := s.userRepository.Create(ctx, input.Name, input.Email, hash)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.authService.IssueToken(user.ID, user.Email)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

// Login deliberately collapses "no such user" and "wrong password" into
// ErrInvalidCredentials so callers cannot probe which emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, hash, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if !s.authService.VerifyPassword(password, hash) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.authService.IssueToken(user.ID, user.Email)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error) {
	// Only re-hash when a new password was supplied; a nil hash leaves the
	// stored one untouched via COALESCE.
	var passwordHash *string
	if input.Password != nil {
		hash, err := s.authService.HashPassword(*input.Password)
		if err != nil {
			return domain.User{}, err
		}
		passwordHash = &hash
	}

	return s.userRepository.Update(ctx, id, input.Name, input.Email, passwordHash)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.Delete(ctx, id)
}

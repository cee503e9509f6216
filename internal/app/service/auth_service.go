package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const bcryptCost = 10

type AuthService struct {
	userRepository ports.UserRepository
	tokens         ports.TokenManager
}

func NewAuthService(userRepository ports.UserRepository, tokens ports.TokenManager) *AuthService {
	return &AuthService{userRepository: userRepository, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.CreateUser(ctx, email, string(hash), input.Name)
	if err != nil {
		return nil, err
	}

	return s.authResult(*user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepository.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	// Same failure for unknown email and wrong password so responses do not
	// reveal whether an account exists.
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.authResult(*user)
}

func (s *AuthService) authResult(user domain.User) (*domain.AuthResult, error) {
	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{User: user, Token: signed}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.AuthService = (*AuthService)(nil)

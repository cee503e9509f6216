package ports

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/pkg/token"
)

type UserRepository interface {
	// FindByEmail returns (nil, nil) when no user has that email.
	// The returned user includes the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, email, passwordHash, name string) (*domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
}

type TokenManager interface {
	Issue(userID int64, email string) (string, error)
	Verify(raw string) (*token.Claims, error)
}

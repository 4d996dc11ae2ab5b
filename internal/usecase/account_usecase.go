package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the issued bearer credential after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// AccountUsecase defines the interface for registration and authentication.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

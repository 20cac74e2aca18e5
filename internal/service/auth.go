package service

import (
	"context"
	"errors"

	"marketplace-api/internal/entity"
	"marketplace-api/internal/repo"
	"marketplace-api/internal/repo/repo_errors"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthService struct {
	userRepo repo.User
	tokens   *TokenManager
}

func NewAuthService(repos *repo.Repositories, tokens *TokenManager) *AuthService {
	return &AuthService{
		userRepo: repos.User,
		tokens:   tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, input *RegisterInput) error {
	_, err := s.userRepo.GetUserByEmail(ctx, input.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, repo_errors.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return err
	}

	_, err = s.userRepo.CreateUser(ctx, &entity.CreateUserInput{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	})
	if err != nil {
		// concurrent registration can still hit the unique index
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return ErrEmailTaken
		}

		return err
	}

	return nil
}

// Login deliberately answers unknown email and wrong password with the
// same error, so callers can't probe which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.LoginOutputModel, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Id.String(), user.Role)
	if err != nil {
		return nil, err
	}

	return &entity.LoginOutputModel{
		Token: token,
		User:  *mapUser(user),
	}, nil
}

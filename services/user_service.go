package services

import (
	"CampusTour/models"
	"CampusTour/repositories"
	"context"
	"fmt"
)

// UserService records login events. It is an audit log: submitted
// credentials are never checked against earlier records.
type UserService struct {
	users  repositories.UserRepository
	hasher PasswordHasher
}

func NewUserService(users repositories.UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// RecordLogin stores a new login record stamped with the current time.
func (s *UserService) RecordLogin(ctx context.Context, username, password string) (*models.User, error) {
	stored, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Password: stored}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("save login: %w", err)
	}
	return user, nil
}

// ListLogins returns every login, newest first.
func (s *UserService) ListLogins(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListByLoginTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("list logins: %w", err)
	}
	return users, nil
}

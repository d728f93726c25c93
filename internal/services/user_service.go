package services

import (
	"context"
	"fmt"

	"kakeibo/internal/core"
)

// UserService exposes user profile operations over a repository.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetUser returns the profile, or nil when the user is unknown.
func (s *UserService) GetUser(ctx context.Context, userID core.UserID) (*core.UserProfile, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *UserService) CreateUser(ctx context.Context, profile *core.UserProfile) error {
	if err := s.repo.Save(ctx, profile); err != nil {
		return fmt.Errorf("save user profile: %w", err)
	}
	return nil
}

func (s *UserService) UpdateUser(ctx context.Context, profile *core.UserProfile) error {
	if err := s.repo.Update(ctx, profile); err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID core.UserID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user profile: %w", err)
	}
	return nil
}

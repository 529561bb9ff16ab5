package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"exercise-tracker-be/internal/apperr"
	"exercise-tracker-be/internal/cache"
	"exercise-tracker-be/internal/models"
	"exercise-tracker-be/internal/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error)
	List(ctx context.Context) ([]*models.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    cache.Cache
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, cacheClient cache.Cache) UserService {
	svc := &userService{
		userRepo: userRepo,
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// Create validates and persists a new user. Usernames are not unique;
// a duplicate username gets its own fresh id.
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, apperr.Validation("username is required")
	}

	user, err := s.userRepo.Create(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	// Warm the lookup cache so an immediately following exercise post
	// skips the database round trip.
	if s.cache != nil {
		cacheKey := fmt.Sprintf("user:%s", user.ID)
		s.cache.SetJSON(ctx, cacheKey, user, 1*time.Hour)
	}

	return &models.UserResponse{
		Username: user.Username,
		ID:       user.ID,
	}, nil
}

// List returns all users reduced to the public shape, in creation order.
func (s *userService) List(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = &models.UserResponse{
			Username: user.Username,
			ID:       user.ID,
		}
	}

	return responses, nil
}

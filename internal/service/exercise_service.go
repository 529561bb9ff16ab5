package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"exercise-tracker-be/internal/apperr"
	"exercise-tracker-be/internal/cache"
	"exercise-tracker-be/internal/entities"
	"exercise-tracker-be/internal/models"
	"exercise-tracker-be/internal/repository"
)

// dateInputLayout is the accepted format for date fields and the
// from/to query bounds.
const dateInputLayout = "2006-01-02"

// ExerciseService defines the interface for exercise business logic
type ExerciseService interface {
	Create(ctx context.Context, userID string, req *models.CreateExerciseRequest) (*models.ExerciseResponse, error)
	Logs(ctx context.Context, userID string, q *models.LogQuery) (*models.LogResponse, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	userRepo     repository.UserRepository
	cache        cache.Cache
}

// NewExerciseService creates a new exercise service
func NewExerciseService(exerciseRepo repository.ExerciseRepository, userRepo repository.UserRepository, cacheClient cache.Cache) ExerciseService {
	svc := &exerciseService{
		exerciseRepo: exerciseRepo,
		userRepo:     userRepo,
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// findUser resolves a user by id, trying the cache before the database.
// Users are immutable once created, so cached entries never go stale.
func (s *exerciseService) findUser(ctx context.Context, id string) (*entities.User, error) {
	cacheKey := fmt.Sprintf("user:%s", id)

	if s.cache != nil {
		var cached entities.User
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && cached.ID != "" {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, cacheKey, user, 1*time.Hour)
	}

	return user, nil
}

// Create validates and persists a new exercise for the given user.
// The response carries the USER's id in _id, which existing consumers
// of this API depend on.
func (s *exerciseService) Create(ctx context.Context, userID string, req *models.CreateExerciseRequest) (*models.ExerciseResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Description) == "" {
		return nil, apperr.Validation("description is required")
	}

	duration, err := strconv.Atoi(strings.TrimSpace(req.Duration))
	if err != nil {
		return nil, apperr.Validation("Invalid duration")
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse(dateInputLayout, req.Date)
		if err != nil {
			return nil, apperr.Validation("Invalid date")
		}
	}

	exercise, err := s.exerciseRepo.Create(ctx, user.ID, req.Description, duration, date)
	if err != nil {
		return nil, err
	}

	return &models.ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Date:        models.FormatDate(exercise.Date),
		Duration:    exercise.Duration,
		Description: exercise.Description,
	}, nil
}

// Logs returns the user's exercise log filtered by the optional date
// range and capped by the optional limit.
func (s *exerciseService) Logs(ctx context.Context, userID string, q *models.LogQuery) (*models.LogResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, err := parseBound(q.From)
	if err != nil {
		return nil, err
	}
	to, err := parseBound(q.To)
	if err != nil {
		return nil, err
	}

	// Non-numeric limit is ignored rather than rejected, matching the
	// parseInt(limit, 10) || 0 behavior of the original consumer.
	limit := 0
	if q.Limit != "" {
		if parsed, err := strconv.Atoi(q.Limit); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	exercises, err := s.exerciseRepo.FindByUserID(ctx, user.ID, from, to, limit)
	if err != nil {
		return nil, err
	}

	log := make([]models.LogEntry, len(exercises))
	for i, exercise := range exercises {
		log[i] = models.LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        models.FormatDate(exercise.Date),
		}
	}

	return &models.LogResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}, nil
}

// parseBound parses an optional date bound; empty means unbounded.
func parseBound(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateInputLayout, value)
	if err != nil {
		return nil, apperr.Validation("Invalid date")
	}
	return &parsed, nil
}

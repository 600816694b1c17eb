package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/dto"
	"github.com/pawsition/pawsition-api/internal/models"
	"github.com/pawsition/pawsition-api/internal/repository"
)

// ProgressService computes a member's spendable progress toward the next grade.
type ProgressService interface {
	Progress(ctx context.Context, userID uint) (dto.ProgressResponse, error)
}

type progressService struct {
	completions repository.CompletionRepository
	grades      repository.GradeRepository
	users       repository.UserRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
}

// NewProgressService builds the progress aggregator. The cache is optional;
// with a nil client or zero TTL every request recomputes from current rows.
func NewProgressService(completions repository.CompletionRepository, grades repository.GradeRepository, users repository.UserRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) ProgressService {
	return &progressService{
		completions: completions,
		grades:      grades,
		users:       users,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "progress_service").Logger(),
	}
}

func (s *progressService) Progress(ctx context.Context, userID uint) (dto.ProgressResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProgressResponse{}, ErrUserNotFound
		}
		return dto.ProgressResponse{}, err
	}

	cacheKey := fmt.Sprintf("progress:user:%d", userID)

	if s.cacheEnabled() {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.ProgressResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Uint("user_id", userID).Msg("progress cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read progress cache")
		}
	}

	completions, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return dto.ProgressResponse{}, err
	}

	consumedIDs, err := s.grades.ConsumedCompletionIDs(ctx, userID)
	if err != nil {
		return dto.ProgressResponse{}, err
	}

	lastGrade, err := s.grades.LastGradeNumber(ctx, userID)
	if err != nil {
		return dto.ProgressResponse{}, err
	}

	response := ComputeProgress(lastGrade, completions, consumedIDs)

	if s.cacheEnabled() {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store progress cache")
			}
		}
	}

	return response, nil
}

func (s *progressService) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

// ComputeProgress is the single source of truth for grade accounting.
// Completions already linked to any grade are excluded forever; the remaining
// ones are summed against the fixed per-grade point schedule. Once the last
// grade is 12 there is no next grade and the member cannot progress further.
func ComputeProgress(lastGrade int, completions []models.Completion, consumedIDs []uint) dto.ProgressResponse {
	consumed := make(map[uint]struct{}, len(consumedIDs))
	for _, id := range consumedIDs {
		consumed[id] = struct{}{}
	}

	var available []models.Completion
	sections := map[uint]struct{}{}
	totalPoints := 0

	for _, completion := range completions {
		if _, used := consumed[completion.ID]; used {
			continue
		}
		available = append(available, completion)
		totalPoints += completion.Skill.Points
		sections[completion.Skill.SectionID] = struct{}{}
	}

	response := dto.ProgressResponse{
		CurrentGrade:       lastGrade,
		TotalPoints:        totalPoints,
		SectionsWithSkills: len(sections),
		Completions:        dto.NewCompletionResponseSlice(available),
	}

	if lastGrade >= models.MaxGradeNumber {
		return response
	}

	next := lastGrade + 1
	response.NextGrade = &next
	response.PointsRequired = models.PointsRequiredFor(next)
	response.Eligible = totalPoints >= response.PointsRequired

	return response
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"reel-bites/internal/entity"
	"reel-bites/internal/repo/persistent"
	"reel-bites/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type InteractionUseCase interface {
	ToggleLike(userID, foodID string) (*entity.ToggleResult, error)
	ToggleSave(userID, foodID string) (*entity.ToggleResult, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	redisClient     *redis.Client
	logger          *logger.Logger
}

func NewInteractionUseCase(
	interactionRepo persistent.InteractionRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		redisClient:     redisClient,
		logger:          logger,
	}
}

func (uc *interactionUseCase) ToggleLike(userID, foodID string) (*entity.ToggleResult, error) {
	result, err := uc.interactionRepo.ToggleLike(userID, foodID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	uc.cacheCount("likes", foodID, result.Count)
	return result, nil
}

func (uc *interactionUseCase) ToggleSave(userID, foodID string) (*entity.ToggleResult, error) {
	result, err := uc.interactionRepo.ToggleSave(userID, foodID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	uc.cacheCount("saves", foodID, result.Count)
	return result, nil
}

func (uc *interactionUseCase) cacheCount(kind, foodID string, count int64) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	key := fmt.Sprintf("food:%s:%s", foodID, kind)
	if err := uc.redisClient.Set(ctx, key, count, time.Hour).Err(); err != nil {
		uc.logger.Warn("Failed to cache %s count for food %s: %v", kind, foodID, err)
	}
}

package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"reel-bites/internal/entity"
	"reel-bites/internal/repo/persistent"
	"reel-bites/pkg/logger"
	"reel-bites/pkg/queue"
	"reel-bites/pkg/s3"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var allowedVideoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".mkv":  true,
}

type FoodUseCase interface {
	CreateFood(partnerID, name, description string, videoFile *multipart.FileHeader) (*entity.FoodItem, error)
	GetFood(foodID string) (*entity.FoodItem, error)
	ListFeed(userID string, limit, offset int) ([]*entity.FeedItem, error)
	ListSaved(userID string) ([]*entity.SavedItem, error)
}

type foodUseCase struct {
	foodRepo        persistent.FoodRepository
	interactionRepo persistent.InteractionRepository
	s3Client        *s3.Client
	redisClient     *redis.Client
	queueClient     *queue.Client
	logger          *logger.Logger
	maxVideoSize    int64
}

func NewFoodUseCase(
	foodRepo persistent.FoodRepository,
	interactionRepo persistent.InteractionRepository,
	s3Client *s3.Client,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
	maxVideoSize int64,
) FoodUseCase {
	return &foodUseCase{
		foodRepo:        foodRepo,
		interactionRepo: interactionRepo,
		s3Client:        s3Client,
		redisClient:     redisClient,
		queueClient:     queueClient,
		logger:          logger,
		maxVideoSize:    maxVideoSize,
	}
}

func (uc *foodUseCase) CreateFood(partnerID, name, description string, videoFile *multipart.FileHeader) (*entity.FoodItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if videoFile == nil {
		return nil, fmt.Errorf("%w: video file is required", ErrValidation)
	}
	if videoFile.Size > uc.maxVideoSize {
		return nil, fmt.Errorf("%w: video exceeds maximum size of %d bytes", ErrValidation, uc.maxVideoSize)
	}

	ext := filepath.Ext(videoFile.Filename)
	if !allowedVideoExtensions[strings.ToLower(ext)] {
		return nil, fmt.Errorf("%w: unsupported video format %q", ErrValidation, ext)
	}

	src, err := videoFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	fileKey := fmt.Sprintf("food/%s/%s%s", partnerID, uuid.New().String(), ext)
	contentType := videoFile.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}

	videoURL, err := uc.s3Client.UploadFile(fileKey, src, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload video to S3: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	item := &entity.FoodItem{
		Name:          strings.TrimSpace(name),
		Description:   description,
		VideoURL:      videoURL,
		FoodPartnerID: partnerID,
	}

	if err := uc.foodRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create food item: %w", err)
	}

	uc.cacheFoodItem(item)

	if uc.queueClient != nil {
		go uc.publishReelEvent(item)
	}

	return item, nil
}

func (uc *foodUseCase) GetFood(foodID string) (*entity.FoodItem, error) {
	item, err := uc.foodRepo.GetByID(foodID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListFeed returns the feed annotated with the viewer's like/save state.
// An empty userID means an anonymous viewer and both flags stay false.
func (uc *foodUseCase) ListFeed(userID string, limit, offset int) ([]*entity.FeedItem, error) {
	items, err := uc.foodRepo.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}

	liked := map[string]bool{}
	saved := map[string]bool{}
	if userID != "" && len(items) > 0 {
		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		if liked, err = uc.interactionRepo.LikedFoodIDs(userID, ids); err != nil {
			return nil, err
		}
		if saved, err = uc.interactionRepo.SavedFoodIDs(userID, ids); err != nil {
			return nil, err
		}
	}

	feed := make([]*entity.FeedItem, len(items))
	for i, item := range items {
		feed[i] = &entity.FeedItem{
			FoodItem: *item,
			IsLiked:  liked[item.ID],
			IsSaved:  saved[item.ID],
		}
	}
	return feed, nil
}

func (uc *foodUseCase) ListSaved(userID string) ([]*entity.SavedItem, error) {
	items, err := uc.foodRepo.ListSavedByUser(userID)
	if err != nil {
		return nil, err
	}

	liked := map[string]bool{}
	if len(items) > 0 {
		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		if liked, err = uc.interactionRepo.LikedFoodIDs(userID, ids); err != nil {
			return nil, err
		}
	}

	saved := make([]*entity.SavedItem, len(items))
	for i, item := range items {
		saved[i] = &entity.SavedItem{
			Food: entity.FeedItem{
				FoodItem: *item,
				IsLiked:  liked[item.ID],
				IsSaved:  true,
			},
		}
	}
	return saved, nil
}

func (uc *foodUseCase) cacheFoodItem(item *entity.FoodItem) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	key := fmt.Sprintf("food:%s", item.ID)
	uc.redisClient.HSet(ctx, key,
		"id", item.ID,
		"name", item.Name,
		"description", item.Description,
		"video_url", item.VideoURL,
		"food_partner_id", item.FoodPartnerID,
	)
	uc.redisClient.Expire(ctx, key, 24*time.Hour)
}

func (uc *foodUseCase) publishReelEvent(item *entity.FoodItem) {
	event := map[string]interface{}{
		"type":            "reel.created",
		"food_id":         item.ID,
		"food_partner_id": item.FoodPartnerID,
		"priority":        5,
	}

	if err := uc.queueClient.PublishReelEvent(event); err != nil {
		uc.logger.Error("[REEL QUEUE] Failed to publish reel event: %v (food_id=%s)", err, item.ID)
	}
}

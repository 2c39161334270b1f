package http

import (
	"net/http"
	"strconv"

	"reel-bites/internal/entity"
	"reel-bites/internal/usecase"
	"reel-bites/pkg/logger"
	"reel-bites/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	foodUseCase        usecase.FoodUseCase
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewFoodHandler(
	foodUseCase usecase.FoodUseCase,
	interactionUseCase usecase.InteractionUseCase,
	logger *logger.Logger,
) *FoodHandler {
	return &FoodHandler{
		foodUseCase:        foodUseCase,
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type CreateFoodRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
}

type ToggleRequest struct {
	FoodID string `json:"foodId" binding:"required,uuid"`
}

type FeedResponse struct {
	Message   string             `json:"message"`
	FoodItems []*entity.FeedItem `json:"foodItems"`
}

type SavedResponse struct {
	Message        string              `json:"message"`
	SavedFoodItems []*entity.SavedItem `json:"savedFoodItems"`
}

type ToggleLikeResponse struct {
	Message   string `json:"message"`
	Like      bool   `json:"like"`
	LikeCount int64  `json:"likeCount"`
}

type ToggleSaveResponse struct {
	Message   string `json:"message"`
	Save      bool   `json:"save"`
	SaveCount int64  `json:"saveCount"`
}

// CreateFood godoc
// @Summary      Upload a new food reel
// @Description  Create a food item with a video, partner only
// @Tags         food
// @Accept       multipart/form-data
// @Produce      json
// @Param        name formData string true "Food name"
// @Param        description formData string true "Description"
// @Param        video formData file true "Video file (mp4/mov/webm/mkv, max 50MB)"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/food [post]
func (h *FoodHandler) CreateFood(c *gin.Context) {
	partnerID := c.GetString(middleware.ContextActorID)

	var req CreateFoodRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "video file is required"})
		return
	}

	item, err := h.foodUseCase.CreateFood(partnerID, req.Name, req.Description, videoFile)
	if err != nil {
		h.logger.Error("Failed to create food item: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Food item created successfully",
		"food":    item,
	})
}

// ListFeed godoc
// @Summary      Browse the food reel feed
// @Description  Returns all food reels in upload order, annotated with the viewer's like/save state when authenticated
// @Tags         food
// @Produce      json
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  FeedResponse
// @Router       /api/food [get]
func (h *FoodHandler) ListFeed(c *gin.Context) {
	userID := c.GetString(middleware.ContextActorID)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	feed, err := h.foodUseCase.ListFeed(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list feed: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FeedResponse{
		Message:   "Food items fetched successfully",
		FoodItems: feed,
	})
}

// ToggleLike godoc
// @Summary      Toggle like on a food reel
// @Description  Likes the reel if not liked, unlikes otherwise. Returns the resulting state and authoritative count.
// @Tags         food
// @Accept       json
// @Produce      json
// @Param        request body ToggleRequest true "Food item to toggle"
// @Success      200  {object}  ToggleLikeResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/food/like [post]
func (h *FoodHandler) ToggleLike(c *gin.Context) {
	userID := c.GetString(middleware.ContextActorID)

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.interactionUseCase.ToggleLike(userID, req.FoodID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Food liked successfully"
	if !result.Active {
		message = "Food unliked successfully"
	}

	c.JSON(http.StatusOK, ToggleLikeResponse{
		Message:   message,
		Like:      result.Active,
		LikeCount: result.Count,
	})
}

// ToggleSave godoc
// @Summary      Toggle save on a food reel
// @Description  Saves the reel if not saved, unsaves otherwise. Returns the resulting state and authoritative count.
// @Tags         food
// @Accept       json
// @Produce      json
// @Param        request body ToggleRequest true "Food item to toggle"
// @Success      200  {object}  ToggleSaveResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/food/save [post]
func (h *FoodHandler) ToggleSave(c *gin.Context) {
	userID := c.GetString(middleware.ContextActorID)

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.interactionUseCase.ToggleSave(userID, req.FoodID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Food saved successfully"
	if !result.Active {
		message = "Food unsaved successfully"
	}

	c.JSON(http.StatusOK, ToggleSaveResponse{
		Message:   message,
		Save:      result.Active,
		SaveCount: result.Count,
	})
}

// ListSaved godoc
// @Summary      List the user's saved reels
// @Tags         food
// @Produce      json
// @Success      200  {object}  SavedResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/food/saved [get]
func (h *FoodHandler) ListSaved(c *gin.Context) {
	userID := c.GetString(middleware.ContextActorID)

	saved, err := h.foodUseCase.ListSaved(userID)
	if err != nil {
		h.logger.Error("Failed to list saved items: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SavedResponse{
		Message:        "Saved food items fetched successfully",
		SavedFoodItems: saved,
	})
}

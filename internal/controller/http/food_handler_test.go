package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"reel-bites/internal/entity"
	"reel-bites/internal/usecase"
	"reel-bites/pkg/logger"
	"reel-bites/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFoodUseCase is a mock implementation of FoodUseCase
type MockFoodUseCase struct {
	mock.Mock
}

func (m *MockFoodUseCase) CreateFood(partnerID, name, description string, videoFile *multipart.FileHeader) (*entity.FoodItem, error) {
	args := m.Called(partnerID, name, description, videoFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FoodItem), args.Error(1)
}

func (m *MockFoodUseCase) GetFood(foodID string) (*entity.FoodItem, error) {
	args := m.Called(foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FoodItem), args.Error(1)
}

func (m *MockFoodUseCase) ListFeed(userID string, limit, offset int) ([]*entity.FeedItem, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FeedItem), args.Error(1)
}

func (m *MockFoodUseCase) ListSaved(userID string) ([]*entity.SavedItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SavedItem), args.Error(1)
}

var _ usecase.FoodUseCase = (*MockFoodUseCase)(nil)

// MockInteractionUseCase is a mock implementation of InteractionUseCase
type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) ToggleLike(userID, foodID string) (*entity.ToggleResult, error) {
	args := m.Called(userID, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

func (m *MockInteractionUseCase) ToggleSave(userID, foodID string) (*entity.ToggleResult, error) {
	args := m.Called(userID, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

var _ usecase.InteractionUseCase = (*MockInteractionUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

const testFoodID = "2f1e9c2a-8f4b-4a7c-9d3e-1b5a6c7d8e9f"

func TestToggleLike_Like(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.POST("/food/like", func(c *gin.Context) {
		c.Set(middleware.ContextActorID, "user-123")
		handler.ToggleLike(c)
	})

	mockInteraction.On("ToggleLike", "user-123", testFoodID).
		Return(&entity.ToggleResult{Active: true, Count: 5}, nil)

	body, _ := json.Marshal(ToggleRequest{FoodID: testFoodID})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/food/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ToggleLikeResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.Like)
	assert.Equal(t, int64(5), response.LikeCount)
	mockInteraction.AssertExpectations(t)
}

func TestToggleLike_Unlike(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.POST("/food/like", func(c *gin.Context) {
		c.Set(middleware.ContextActorID, "user-123")
		handler.ToggleLike(c)
	})

	mockInteraction.On("ToggleLike", "user-123", testFoodID).
		Return(&entity.ToggleResult{Active: false, Count: 4}, nil)

	body, _ := json.Marshal(ToggleRequest{FoodID: testFoodID})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/food/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ToggleLikeResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.Like)
	assert.Equal(t, int64(4), response.LikeCount)
}

func TestToggleLike_UnknownFood(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.POST("/food/like", func(c *gin.Context) {
		c.Set(middleware.ContextActorID, "user-123")
		handler.ToggleLike(c)
	})

	mockInteraction.On("ToggleLike", "user-123", testFoodID).
		Return(nil, usecase.ErrNotFound)

	body, _ := json.Marshal(ToggleRequest{FoodID: testFoodID})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/food/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleLike_InvalidBody(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.POST("/food/like", func(c *gin.Context) {
		c.Set(middleware.ContextActorID, "user-123")
		handler.ToggleLike(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/food/like", bytes.NewReader([]byte(`{"foodId":"not-a-uuid"}`)))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockInteraction.AssertNotCalled(t, "ToggleLike")
}

func TestToggleSave_Save(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.POST("/food/save", func(c *gin.Context) {
		c.Set(middleware.ContextActorID, "user-123")
		handler.ToggleSave(c)
	})

	mockInteraction.On("ToggleSave", "user-123", testFoodID).
		Return(&entity.ToggleResult{Active: true, Count: 2}, nil)

	body, _ := json.Marshal(ToggleRequest{FoodID: testFoodID})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/food/save", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ToggleSaveResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.Save)
	assert.Equal(t, int64(2), response.SaveCount)
}

func TestListFeed_Anonymous(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.GET("/food", handler.ListFeed)

	feed := []*entity.FeedItem{
		{FoodItem: entity.FoodItem{ID: testFoodID, Name: "Margherita Pull", LikeCount: 3}},
	}
	mockFood.On("ListFeed", "", 0, 0).Return(feed, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/food", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response FeedResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.FoodItems, 1)
	assert.Equal(t, "Margherita Pull", response.FoodItems[0].Name)
	assert.False(t, response.FoodItems[0].IsLiked)
}

func TestListFeed_Authenticated(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.GET("/food", func(c *gin.Context) {
		c.Set(middleware.ContextActorID, "user-123")
		handler.ListFeed(c)
	})

	feed := []*entity.FeedItem{
		{FoodItem: entity.FoodItem{ID: testFoodID, Name: "Margherita Pull"}, IsLiked: true, IsSaved: true},
	}
	mockFood.On("ListFeed", "user-123", 0, 0).Return(feed, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/food", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response FeedResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.FoodItems, 1)
	assert.True(t, response.FoodItems[0].IsLiked)
	assert.True(t, response.FoodItems[0].IsSaved)
}

func TestListSaved(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.GET("/food/saved", func(c *gin.Context) {
		c.Set(middleware.ContextActorID, "user-123")
		handler.ListSaved(c)
	})

	saved := []*entity.SavedItem{
		{Food: entity.FeedItem{FoodItem: entity.FoodItem{ID: testFoodID, Name: "Tteokbokki Glow"}, IsSaved: true}},
	}
	mockFood.On("ListSaved", "user-123").Return(saved, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/food/saved", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response SavedResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.SavedFoodItems, 1)
	assert.Equal(t, "Tteokbokki Glow", response.SavedFoodItems[0].Food.Name)
	assert.True(t, response.SavedFoodItems[0].Food.IsSaved)
}

func TestCreateFood_MissingVideo(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.POST("/food", func(c *gin.Context) {
		c.Set(middleware.ContextActorID, "partner-123")
		handler.CreateFood(c)
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("name", "Margherita Pull")
	mw.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/food", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockFood.AssertNotCalled(t, "CreateFood")
}

func TestCreateFood_Success(t *testing.T) {
	mockFood := new(MockFoodUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewFoodHandler(mockFood, mockInteraction, logger.New())

	router := setupTestRouter()
	router.POST("/food", func(c *gin.Context) {
		c.Set(middleware.ContextActorID, "partner-123")
		handler.CreateFood(c)
	})

	item := &entity.FoodItem{
		ID:            testFoodID,
		Name:          "Margherita Pull",
		VideoURL:      "https://cdn.example.com/reels/margherita.mp4",
		FoodPartnerID: "partner-123",
	}
	mockFood.On("CreateFood", "partner-123", "Margherita Pull", "Cheese pull", mock.AnythingOfType("*multipart.FileHeader")).
		Return(item, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("name", "Margherita Pull")
	mw.WriteField("description", "Cheese pull")
	fw, _ := mw.CreateFormFile("video", "reel.mp4")
	fw.Write([]byte("fake video bytes"))
	mw.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/food", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Margherita Pull")
	mockFood.AssertExpectations(t)
}

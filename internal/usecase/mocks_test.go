package usecase

import (
	"reel-bites/internal/entity"
	"reel-bites/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	if args.Error(0) == nil && user.ID == "" {
		user.ID = "user-generated-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockFoodPartnerRepository struct {
	mock.Mock
}

func (m *MockFoodPartnerRepository) Create(partner *entity.FoodPartner) error {
	args := m.Called(partner)
	if args.Error(0) == nil && partner.ID == "" {
		partner.ID = "partner-generated-id"
	}
	return args.Error(0)
}

func (m *MockFoodPartnerRepository) GetByID(id string) (*entity.FoodPartner, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FoodPartner), args.Error(1)
}

func (m *MockFoodPartnerRepository) GetByEmail(email string) (*entity.FoodPartner, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FoodPartner), args.Error(1)
}

func (m *MockFoodPartnerRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodPartnerRepository) Update(partner *entity.FoodPartner) error {
	args := m.Called(partner)
	return args.Error(0)
}

var _ persistent.FoodPartnerRepository = (*MockFoodPartnerRepository)(nil)

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(item *entity.FoodItem) error {
	args := m.Called(item)
	if args.Error(0) == nil && item.ID == "" {
		item.ID = "food-generated-id"
	}
	return args.Error(0)
}

func (m *MockFoodRepository) GetByID(id string) (*entity.FoodItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) ListAll(limit, offset int) ([]*entity.FoodItem, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) ListByPartner(partnerID string) ([]*entity.FoodItem, error) {
	args := m.Called(partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) ListSavedByUser(userID string) ([]*entity.FoodItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FoodItem), args.Error(1)
}

var _ persistent.FoodRepository = (*MockFoodRepository)(nil)

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) ToggleLike(userID, foodID string) (*entity.ToggleResult, error) {
	args := m.Called(userID, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

func (m *MockInteractionRepository) ToggleSave(userID, foodID string) (*entity.ToggleResult, error) {
	args := m.Called(userID, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

func (m *MockInteractionRepository) IsLiked(userID, foodID string) (bool, error) {
	args := m.Called(userID, foodID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) IsSaved(userID, foodID string) (bool, error) {
	args := m.Called(userID, foodID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) LikedFoodIDs(userID string, foodIDs []string) (map[string]bool, error) {
	args := m.Called(userID, foodIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockInteractionRepository) SavedFoodIDs(userID string, foodIDs []string) (map[string]bool, error) {
	args := m.Called(userID, foodIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)

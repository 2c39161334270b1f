package usecase

import (
	"testing"

	"reel-bites/internal/entity"
	"reel-bites/internal/repo/persistent"
	"reel-bites/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPartnerUseCaseForTest(partnerRepo *MockFoodPartnerRepository, foodRepo *MockFoodRepository) PartnerUseCase {
	return NewPartnerUseCase(partnerRepo, foodRepo, logger.New())
}

func TestGetProfile_IncludesFoodItems(t *testing.T) {
	partnerRepo := new(MockFoodPartnerRepository)
	foodRepo := new(MockFoodRepository)
	uc := newPartnerUseCaseForTest(partnerRepo, foodRepo)

	partnerRepo.On("GetByID", "partner-123").Return(&entity.FoodPartner{
		ID:       "partner-123",
		Name:     "Napoli Slice",
		Password: "hashed",
	}, nil)
	foodRepo.On("ListByPartner", "partner-123").Return([]*entity.FoodItem{
		{ID: "food-1", Name: "Margherita Pull"},
		{ID: "food-2", Name: "Diavola Flames"},
	}, nil)

	profile, err := uc.GetProfile("partner-123")

	assert.NoError(t, err)
	assert.Equal(t, "Napoli Slice", profile.Name)
	assert.Equal(t, 2, profile.TotalMeals)
	assert.Len(t, profile.FoodItems, 2)
	assert.Empty(t, profile.Password)
}

func TestGetProfile_NotFound(t *testing.T) {
	partnerRepo := new(MockFoodPartnerRepository)
	foodRepo := new(MockFoodRepository)
	uc := newPartnerUseCaseForTest(partnerRepo, foodRepo)

	partnerRepo.On("GetByID", "missing").Return(nil, persistent.ErrRecordNotFound)

	_, err := uc.GetProfile("missing")

	assert.ErrorIs(t, err, ErrNotFound)
	foodRepo.AssertNotCalled(t, "ListByPartner")
}

func TestUpdateProfile_SelfOnly(t *testing.T) {
	partnerRepo := new(MockFoodPartnerRepository)
	foodRepo := new(MockFoodRepository)
	uc := newPartnerUseCaseForTest(partnerRepo, foodRepo)

	name := "Hijacked"
	_, err := uc.UpdateProfile("partner-123", "partner-456", PartnerProfileUpdate{Name: &name})

	assert.ErrorIs(t, err, ErrForbidden)
	partnerRepo.AssertNotCalled(t, "Update")
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	partnerRepo := new(MockFoodPartnerRepository)
	foodRepo := new(MockFoodRepository)
	uc := newPartnerUseCaseForTest(partnerRepo, foodRepo)

	partnerRepo.On("GetByID", "partner-123").Return(&entity.FoodPartner{
		ID:      "partner-123",
		Name:    "Napoli Slice",
		Phone:   "+1-555-0101",
		Address: "12 Oven Street",
	}, nil)
	partnerRepo.On("Update", mock.AnythingOfType("*entity.FoodPartner")).Return(nil)

	phone := "+1-555-0999"
	updated, err := uc.UpdateProfile("partner-123", "partner-123", PartnerProfileUpdate{Phone: &phone})

	assert.NoError(t, err)
	assert.Equal(t, "+1-555-0999", updated.Phone)
	// Fields not in the update stay untouched
	assert.Equal(t, "Napoli Slice", updated.Name)
	assert.Equal(t, "12 Oven Street", updated.Address)
}

func TestUpdateProfile_BlankNameIgnored(t *testing.T) {
	partnerRepo := new(MockFoodPartnerRepository)
	foodRepo := new(MockFoodRepository)
	uc := newPartnerUseCaseForTest(partnerRepo, foodRepo)

	partnerRepo.On("GetByID", "partner-123").Return(&entity.FoodPartner{
		ID:   "partner-123",
		Name: "Napoli Slice",
	}, nil)
	partnerRepo.On("Update", mock.AnythingOfType("*entity.FoodPartner")).Return(nil)

	blank := "   "
	updated, err := uc.UpdateProfile("partner-123", "partner-123", PartnerProfileUpdate{Name: &blank})

	assert.NoError(t, err)
	assert.Equal(t, "Napoli Slice", updated.Name)
}

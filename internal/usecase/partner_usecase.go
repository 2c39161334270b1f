package usecase

import (
	"strings"

	"reel-bites/internal/entity"
	"reel-bites/internal/repo/persistent"
	"reel-bites/pkg/logger"
)

type PartnerProfileUpdate struct {
	Name        *string
	ContactName *string
	Phone       *string
	Address     *string
}

type PartnerUseCase interface {
	GetProfile(partnerID string) (*entity.FoodPartnerProfile, error)
	UpdateProfile(partnerID, actorID string, update PartnerProfileUpdate) (*entity.FoodPartner, error)
}

type partnerUseCase struct {
	partnerRepo persistent.FoodPartnerRepository
	foodRepo    persistent.FoodRepository
	logger      *logger.Logger
}

func NewPartnerUseCase(
	partnerRepo persistent.FoodPartnerRepository,
	foodRepo persistent.FoodRepository,
	logger *logger.Logger,
) PartnerUseCase {
	return &partnerUseCase{
		partnerRepo: partnerRepo,
		foodRepo:    foodRepo,
		logger:      logger,
	}
}

func (uc *partnerUseCase) GetProfile(partnerID string) (*entity.FoodPartnerProfile, error) {
	partner, err := uc.partnerRepo.GetByID(partnerID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := uc.foodRepo.ListByPartner(partnerID)
	if err != nil {
		return nil, err
	}

	partner.Password = ""
	profile := &entity.FoodPartnerProfile{
		FoodPartner: *partner,
		TotalMeals:  len(items),
		FoodItems:   make([]entity.FoodItem, len(items)),
	}
	for i, item := range items {
		profile.FoodItems[i] = *item
	}
	return profile, nil
}

// UpdateProfile applies a partial update. Partners can only edit themselves.
func (uc *partnerUseCase) UpdateProfile(partnerID, actorID string, update PartnerProfileUpdate) (*entity.FoodPartner, error) {
	if partnerID != actorID {
		return nil, ErrForbidden
	}

	partner, err := uc.partnerRepo.GetByID(partnerID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		partner.Name = strings.TrimSpace(*update.Name)
	}
	if update.ContactName != nil {
		partner.ContactName = strings.TrimSpace(*update.ContactName)
	}
	if update.Phone != nil {
		partner.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.Address != nil {
		partner.Address = strings.TrimSpace(*update.Address)
	}

	if err := uc.partnerRepo.Update(partner); err != nil {
		uc.logger.Error("Failed to update food partner %s: %v", partnerID, err)
		return nil, err
	}

	partner.Password = ""
	return partner, nil
}

package persistent

import (
	"reel-bites/internal/entity"
	"reel-bites/internal/model"

	"gorm.io/gorm"
)

type FoodPartnerRepository interface {
	Create(partner *entity.FoodPartner) error
	GetByID(id string) (*entity.FoodPartner, error)
	GetByEmail(email string) (*entity.FoodPartner, error)
	EmailExists(email string) (bool, error)
	Update(partner *entity.FoodPartner) error
}

type foodPartnerRepository struct {
	db *gorm.DB
}

func NewFoodPartnerRepository(db *gorm.DB) FoodPartnerRepository {
	return &foodPartnerRepository{db: db}
}

func (r *foodPartnerRepository) Create(partner *entity.FoodPartner) error {
	partnerModel := ToFoodPartnerModel(partner)
	if err := r.db.Create(partnerModel).Error; err != nil {
		return err
	}
	*partner = *ToFoodPartnerEntity(partnerModel)
	return nil
}

func (r *foodPartnerRepository) GetByID(id string) (*entity.FoodPartner, error) {
	var partnerModel model.FoodPartnerModel
	if err := r.db.Where("id = ?", id).First(&partnerModel).Error; err != nil {
		return nil, err
	}
	return ToFoodPartnerEntity(&partnerModel), nil
}

func (r *foodPartnerRepository) GetByEmail(email string) (*entity.FoodPartner, error) {
	var partnerModel model.FoodPartnerModel
	if err := r.db.Where("email = ?", email).First(&partnerModel).Error; err != nil {
		return nil, err
	}
	return ToFoodPartnerEntity(&partnerModel), nil
}

func (r *foodPartnerRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.FoodPartnerModel{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *foodPartnerRepository) Update(partner *entity.FoodPartner) error {
	partnerModel := ToFoodPartnerModel(partner)
	return r.db.Model(&model.FoodPartnerModel{}).
		Where("id = ?", partnerModel.ID).
		Updates(map[string]interface{}{
			"name":         partnerModel.Name,
			"contact_name": partnerModel.ContactName,
			"phone":        partnerModel.Phone,
			"address":      partnerModel.Address,
		}).Error
}

package persistent

import (
	"reel-bites/internal/entity"
	"reel-bites/internal/model"

	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(item *entity.FoodItem) error
	GetByID(id string) (*entity.FoodItem, error)
	ListAll(limit, offset int) ([]*entity.FoodItem, error)
	ListByPartner(partnerID string) ([]*entity.FoodItem, error)
	ListSavedByUser(userID string) ([]*entity.FoodItem, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) Create(item *entity.FoodItem) error {
	itemModel := ToFoodItemModel(item)
	if err := r.db.Create(itemModel).Error; err != nil {
		return err
	}
	*item = *ToFoodItemEntity(itemModel)
	return nil
}

func (r *foodRepository) GetByID(id string) (*entity.FoodItem, error) {
	var itemModel model.FoodItemModel
	if err := r.db.Where("id = ?", id).First(&itemModel).Error; err != nil {
		return nil, err
	}
	return ToFoodItemEntity(&itemModel), nil
}

// ListAll returns the feed in stable upload order. The secondary id sort
// keeps items uploaded in the same instant in a deterministic order.
func (r *foodRepository) ListAll(limit, offset int) ([]*entity.FoodItem, error) {
	var itemModels []model.FoodItemModel
	query := r.db.Order("created_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.FoodItem, len(itemModels))
	for i := range itemModels {
		items[i] = ToFoodItemEntity(&itemModels[i])
	}
	return items, nil
}

func (r *foodRepository) ListByPartner(partnerID string) ([]*entity.FoodItem, error) {
	var itemModels []model.FoodItemModel
	if err := r.db.Where("food_partner_id = ?", partnerID).
		Order("created_at ASC, id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.FoodItem, len(itemModels))
	for i := range itemModels {
		items[i] = ToFoodItemEntity(&itemModels[i])
	}
	return items, nil
}

// ListSavedByUser orders by when the user saved, newest first.
func (r *foodRepository) ListSavedByUser(userID string) ([]*entity.FoodItem, error) {
	var itemModels []model.FoodItemModel
	if err := r.db.Model(&model.FoodItemModel{}).
		Joins("INNER JOIN saves ON food_items.id = saves.food_id").
		Where("saves.user_id = ?", userID).
		Order("saves.created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.FoodItem, len(itemModels))
	for i := range itemModels {
		items[i] = ToFoodItemEntity(&itemModels[i])
	}
	return items, nil
}

package persistent

import (
	"reel-bites/internal/entity"
	"reel-bites/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepository interface {
	ToggleLike(userID, foodID string) (*entity.ToggleResult, error)
	ToggleSave(userID, foodID string) (*entity.ToggleResult, error)
	IsLiked(userID, foodID string) (bool, error)
	IsSaved(userID, foodID string) (bool, error)
	LikedFoodIDs(userID string, foodIDs []string) (map[string]bool, error)
	SavedFoodIDs(userID string, foodIDs []string) (map[string]bool, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// ToggleLike flips the like state for (userID, foodID) in a single
// transaction. Delete-first decides the direction: if a row was removed the
// toggle is off, otherwise an insert guarded by the unique (user_id, food_id)
// index turns it on. The counter moves in the same transaction and the final
// value is read back so the caller gets the authoritative count.
func (r *interactionRepository) ToggleLike(userID, foodID string) (*entity.ToggleResult, error) {
	var result entity.ToggleResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.FoodItemModel{}).Where("id = ?", foodID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return gorm.ErrRecordNotFound
		}

		del := tx.Where("user_id = ? AND food_id = ?", userID, foodID).Delete(&model.LikeModel{})
		if del.Error != nil {
			return del.Error
		}

		if del.RowsAffected > 0 {
			result.Active = false
			if err := tx.Model(&model.FoodItemModel{}).Where("id = ?", foodID).
				UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - 1, 0)")).Error; err != nil {
				return err
			}
		} else {
			like := &model.LikeModel{UserID: userID, FoodID: foodID}
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
			if ins.Error != nil {
				return ins.Error
			}
			result.Active = true
			if ins.RowsAffected > 0 {
				if err := tx.Model(&model.FoodItemModel{}).Where("id = ?", foodID).
					UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
					return err
				}
			}
		}

		return tx.Model(&model.FoodItemModel{}).
			Select("like_count").
			Where("id = ?", foodID).
			Scan(&result.Count).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ToggleSave mirrors ToggleLike for the save collection.
func (r *interactionRepository) ToggleSave(userID, foodID string) (*entity.ToggleResult, error) {
	var result entity.ToggleResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.FoodItemModel{}).Where("id = ?", foodID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return gorm.ErrRecordNotFound
		}

		del := tx.Where("user_id = ? AND food_id = ?", userID, foodID).Delete(&model.SaveModel{})
		if del.Error != nil {
			return del.Error
		}

		if del.RowsAffected > 0 {
			result.Active = false
			if err := tx.Model(&model.FoodItemModel{}).Where("id = ?", foodID).
				UpdateColumn("save_count", gorm.Expr("GREATEST(save_count - 1, 0)")).Error; err != nil {
				return err
			}
		} else {
			save := &model.SaveModel{UserID: userID, FoodID: foodID}
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(save)
			if ins.Error != nil {
				return ins.Error
			}
			result.Active = true
			if ins.RowsAffected > 0 {
				if err := tx.Model(&model.FoodItemModel{}).Where("id = ?", foodID).
					UpdateColumn("save_count", gorm.Expr("save_count + 1")).Error; err != nil {
					return err
				}
			}
		}

		return tx.Model(&model.FoodItemModel{}).
			Select("save_count").
			Where("id = ?", foodID).
			Scan(&result.Count).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *interactionRepository) IsLiked(userID, foodID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("user_id = ? AND food_id = ?", userID, foodID).Count(&count).Error
	return count > 0, err
}

func (r *interactionRepository) IsSaved(userID, foodID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SaveModel{}).Where("user_id = ? AND food_id = ?", userID, foodID).Count(&count).Error
	return count > 0, err
}

// LikedFoodIDs returns the subset of foodIDs the user has liked, as a set.
// One query per feed page instead of one per item.
func (r *interactionRepository) LikedFoodIDs(userID string, foodIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(foodIDs))
	if len(foodIDs) == 0 {
		return liked, nil
	}

	var ids []string
	if err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND food_id IN ?", userID, foodIDs).
		Pluck("food_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *interactionRepository) SavedFoodIDs(userID string, foodIDs []string) (map[string]bool, error) {
	saved := make(map[string]bool, len(foodIDs))
	if len(foodIDs) == 0 {
		return saved, nil
	}

	var ids []string
	if err := r.db.Model(&model.SaveModel{}).
		Where("user_id = ? AND food_id IN ?", userID, foodIDs).
		Pluck("food_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		saved[id] = true
	}
	return saved, nil
}

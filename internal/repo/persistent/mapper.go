package persistent

import (
	"reel-bites/internal/entity"
	"reel-bites/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Password:  m.Password,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		FullName:  e.FullName,
		Email:     e.Email,
		Password:  e.Password,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToFoodPartnerEntity(m *model.FoodPartnerModel) *entity.FoodPartner {
	if m == nil {
		return nil
	}

	return &entity.FoodPartner{
		ID:          m.ID,
		Name:        m.Name,
		ContactName: m.ContactName,
		Email:       m.Email,
		Password:    m.Password,
		Phone:       m.Phone,
		Address:     m.Address,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToFoodPartnerModel(e *entity.FoodPartner) *model.FoodPartnerModel {
	if e == nil {
		return nil
	}

	return &model.FoodPartnerModel{
		ID:          e.ID,
		Name:        e.Name,
		ContactName: e.ContactName,
		Email:       e.Email,
		Password:    e.Password,
		Phone:       e.Phone,
		Address:     e.Address,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToFoodItemEntity(m *model.FoodItemModel) *entity.FoodItem {
	if m == nil {
		return nil
	}

	return &entity.FoodItem{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		VideoURL:      m.VideoURL,
		FoodPartnerID: m.FoodPartnerID,
		LikeCount:     m.LikeCount,
		SaveCount:     m.SaveCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToFoodItemModel(e *entity.FoodItem) *model.FoodItemModel {
	if e == nil {
		return nil
	}

	return &model.FoodItemModel{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		VideoURL:      e.VideoURL,
		FoodPartnerID: e.FoodPartnerID,
		LikeCount:     e.LikeCount,
		SaveCount:     e.SaveCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		FoodID:    m.FoodID,
		CreatedAt: m.CreatedAt,
	}
}

func ToSaveEntity(m *model.SaveModel) *entity.Save {
	if m == nil {
		return nil
	}

	return &entity.Save{
		ID:        m.ID,
		UserID:    m.UserID,
		FoodID:    m.FoodID,
		CreatedAt: m.CreatedAt,
	}
}

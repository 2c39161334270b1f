package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like and save rows are pure join records. They are hard-deleted on
// toggle-off so the composite unique index stays reusable.

type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_food" json:"user_id"`
	FoodID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_food;index" json:"food_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type SaveModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_saves_user_food" json:"user_id"`
	FoodID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_saves_user_food;index" json:"food_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (SaveModel) TableName() string {
	return "saves"
}

func (s *SaveModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

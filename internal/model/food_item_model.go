package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodItemModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	VideoURL      string         `gorm:"type:varchar(500);not null" json:"video_url"`
	FoodPartnerID string         `gorm:"type:uuid;not null;index" json:"food_partner_id"`
	LikeCount     int64          `gorm:"default:0" json:"like_count"`
	SaveCount     int64          `gorm:"default:0" json:"save_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FoodItemModel) TableName() string {
	return "food_items"
}

func (f *FoodItemModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

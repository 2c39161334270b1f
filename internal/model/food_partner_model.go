package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodPartnerModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	ContactName string         `gorm:"type:varchar(255);not null" json:"contact_name"`
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Phone       string         `gorm:"type:varchar(30);not null" json:"phone"`
	Address     string         `gorm:"type:varchar(500);not null" json:"address"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FoodPartnerModel) TableName() string {
	return "food_partners"
}

func (fp *FoodPartnerModel) BeforeCreate(tx *gorm.DB) error {
	if fp.ID == "" {
		fp.ID = uuid.New().String()
	}
	return nil
}

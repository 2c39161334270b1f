package entity

import "time"

type FoodPartner struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FoodPartnerProfile is the partner page payload: the partner plus
// everything they have published.
type FoodPartnerProfile struct {
	FoodPartner
	TotalMeals int        `json:"totalMeals"`
	FoodItems  []FoodItem `json:"foodItems"`
}

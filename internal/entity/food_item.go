package entity

import "time"

type FoodItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	VideoURL      string    `json:"video"`
	FoodPartnerID string    `json:"foodPartner"`
	LikeCount     int64     `json:"likeCount"`
	SaveCount     int64     `json:"saveCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FeedItem is a food item annotated with the viewer's interaction state.
// For anonymous viewers both flags are false.
type FeedItem struct {
	FoodItem
	IsLiked bool `json:"isLiked"`
	IsSaved bool `json:"isSaved"`
}

// SavedItem wraps a food item the way the saved collection returns it,
// one wrapper per save record.
type SavedItem struct {
	Food FeedItem `json:"food"`
}

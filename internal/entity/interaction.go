package entity

import "time"

type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	FoodID    string    `json:"food"`
	CreatedAt time.Time `json:"createdAt"`
}

type Save struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	FoodID    string    `json:"food"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToggleResult reports the state after a like/save toggle. Count is the
// authoritative counter read back inside the same transaction, so clients
// can reconcile their optimistic UI against it.
type ToggleResult struct {
	Active bool
	Count  int64
}

package model

import "time"

// FoodRequest is a requester's claim on a food item.
// FoodID is a weak reference: nothing guarantees the item still exists.
type FoodRequest struct {
	ID             string        `json:"id"`
	FoodID         string        `json:"foodId"`
	UserEmail      string        `json:"userEmail"`
	Status         RequestStatus `json:"status"`
	RequesterName  string        `json:"requesterName,omitempty"`
	RequesterImage string        `json:"requesterImage,omitempty"`
	ContactNumber  string        `json:"contactNumber,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

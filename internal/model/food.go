package model

import "time"

// FoodItem is a surplus food listing owned by a donor.
// It carries no persistence tags; each store adapter maps it to its own row or document shape.
type FoodItem struct {
	ID              string     `json:"id"`
	Name            string     `json:"food_name"`
	Image           string     `json:"food_image,omitempty"`
	ImageKey        string     `json:"food_image_key,omitempty"`
	Quantity        int        `json:"food_quantity"`
	PickupLocation  string     `json:"pickup_location"`
	ExpireDate      time.Time  `json:"expire_date"`
	AdditionalNotes string     `json:"additional_notes,omitempty"`
	Status          FoodStatus `json:"food_status"`
	DonatorEmail    string     `json:"donator_email"`
	DonatorName     string     `json:"donator_name,omitempty"`
	DonatorImage    string     `json:"donator_image,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FoodPatch is a partial update of a food item. Nil fields are left untouched.
// Quantity and ExpireDate can be changed but never cleared.
type FoodPatch struct {
	Name            *string
	Image           *string
	ImageKey        *string
	Quantity        *int
	PickupLocation  *string
	ExpireDate      *time.Time
	AdditionalNotes *string
	Status          *FoodStatus
	DonatorName     *string
	DonatorImage    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p FoodPatch) IsEmpty() bool {
	return p == FoodPatch{}
}

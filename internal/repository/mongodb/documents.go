// Package mongodb implements the store adapters on MongoDB collections.
package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
)

const (
	FoodsCollection    = "foods"
	RequestsCollection = "food_requests"
)

type foodDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"food_name"`
	Image           string             `bson:"food_image,omitempty"`
	ImageKey        string             `bson:"food_image_key,omitempty"`
	Quantity        int                `bson:"food_quantity"`
	PickupLocation  string             `bson:"pickup_location"`
	ExpireDate      time.Time          `bson:"expire_date"`
	AdditionalNotes string             `bson:"additional_notes,omitempty"`
	Status          string             `bson:"food_status"`
	DonatorEmail    string             `bson:"donator_email"`
	DonatorName     string             `bson:"donator_name,omitempty"`
	DonatorImage    string             `bson:"donator_image,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func newFoodDocument(item *model.FoodItem) foodDocument {
	return foodDocument{
		Name:            item.Name,
		Image:           item.Image,
		ImageKey:        item.ImageKey,
		Quantity:        item.Quantity,
		PickupLocation:  item.PickupLocation,
		ExpireDate:      item.ExpireDate,
		AdditionalNotes: item.AdditionalNotes,
		Status:          string(item.Status),
		DonatorEmail:    item.DonatorEmail,
		DonatorName:     item.DonatorName,
		DonatorImage:    item.DonatorImage,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func (d foodDocument) model() model.FoodItem {
	return model.FoodItem{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Image:           d.Image,
		ImageKey:        d.ImageKey,
		Quantity:        d.Quantity,
		PickupLocation:  d.PickupLocation,
		ExpireDate:      d.ExpireDate.UTC(),
		AdditionalNotes: d.AdditionalNotes,
		Status:          model.FoodStatus(d.Status),
		DonatorEmail:    d.DonatorEmail,
		DonatorName:     d.DonatorName,
		DonatorImage:    d.DonatorImage,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
}

type requestDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	FoodID         string             `bson:"foodId"`
	UserEmail      string             `bson:"userEmail"`
	Status         string             `bson:"status"`
	RequesterName  string             `bson:"requesterName,omitempty"`
	RequesterImage string             `bson:"requesterImage,omitempty"`
	ContactNumber  string             `bson:"contactNumber,omitempty"`
	Notes          string             `bson:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func newRequestDocument(r *model.FoodRequest) requestDocument {
	return requestDocument{
		FoodID:         r.FoodID,
		UserEmail:      r.UserEmail,
		Status:         string(r.Status),
		RequesterName:  r.RequesterName,
		RequesterImage: r.RequesterImage,
		ContactNumber:  r.ContactNumber,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (d requestDocument) model() model.FoodRequest {
	return model.FoodRequest{
		ID:             d.ID.Hex(),
		FoodID:         d.FoodID,
		UserEmail:      d.UserEmail,
		Status:         model.RequestStatus(d.Status),
		RequesterName:  d.RequesterName,
		RequesterImage: d.RequesterImage,
		ContactNumber:  d.ContactNumber,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}

func validObjectID(id string) bool {
	return primitive.IsValidObjectID(id)
}

package repository

import (
	"context"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
)

// FoodFilter is the store-agnostic predicate over food items. Zero fields add no predicate.
type FoodFilter struct {
	// NameContains is a case-insensitive substring match on the name.
	NameContains string
	// PickupLocation is an exact match.
	PickupLocation string
	// Status is nil when every status is accepted.
	Status       *model.FoodStatus
	DonatorEmail string
}

// FoodRepository is the item store adapter: data access for food items only.
type FoodRepository interface {
	IDValidator

	// Find returns the items matching f in the order given by s, bounded by pq.
	Find(ctx context.Context, f FoodFilter, s SortSpec, pq PageQuery) ([]model.FoodItem, error)

	// Count returns how many items match f, ignoring pagination.
	Count(ctx context.Context, f FoodFilter) (int, error)

	// FindByID returns ErrNotFound when no item has the id.
	FindByID(ctx context.Context, id string) (*model.FoodItem, error)

	// Create inserts the item and returns it with the store-generated id.
	Create(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error)

	// Update applies a partial update. A zero MatchedCount means the id does not exist.
	Update(ctx context.Context, id string, p model.FoodPatch) (UpdateResult, error)

	// Delete removes the item physically.
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

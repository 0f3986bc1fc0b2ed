package repository

import (
	"context"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
)

// RequestRepository is data access for food requests.
type RequestRepository interface {
	IDValidator

	Create(ctx context.Context, r *model.FoodRequest) (*model.FoodRequest, error)

	// FindByID returns ErrNotFound when no request has the id.
	FindByID(ctx context.Context, id string) (*model.FoodRequest, error)

	// FindByUser lists the requests filed by email, newest first.
	// An empty email lists every request.
	FindByUser(ctx context.Context, email string) ([]model.FoodRequest, error)

	// FindByFood lists the requests against one food item, oldest first.
	FindByFood(ctx context.Context, foodID string) ([]model.FoodRequest, error)

	// UpdateStatus sets the status only when the stored status is one of from.
	// A zero MatchedCount means the id is unknown or the stored status was not allowed.
	UpdateStatus(ctx context.Context, id string, to model.RequestStatus, from []model.RequestStatus) (UpdateResult, error)

	Delete(ctx context.Context, id string) (DeleteResult, error)
}

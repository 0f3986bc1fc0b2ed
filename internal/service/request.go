package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

// CreateRequestInput is the payload of a new food request.
// FoodID is stored as given; it is never checked against the foods collection.
type CreateRequestInput struct {
	FoodID         string `json:"foodId"`
	UserEmail      string `json:"userEmail" validate:"required,email"`
	RequesterName  string `json:"requesterName"`
	RequesterImage string `json:"requesterImage" validate:"omitempty,url"`
	ContactNumber  string `json:"contactNumber" validate:"max=32"`
	Notes          string `json:"notes" validate:"max=2000"`
}

// RequestService drives the food request lifecycle.
//
// Accepting a request does not touch the food item. Clients follow up with a
// separate food status update, and until then the two records disagree.
type RequestService interface {
	// Create files a Pending request.
	Create(ctx context.Context, in CreateRequestInput) (*model.FoodRequest, error)

	// ListByUser returns the requests filed by email. An empty email returns every request.
	ListByUser(ctx context.Context, email string) ([]model.FoodRequest, error)

	// ListByFood returns the requests against one item.
	ListByFood(ctx context.Context, foodID string) ([]model.FoodRequest, error)

	// UpdateStatus moves a Pending request to status. Repeating the current
	// status is a no-op; any other change from a terminal status is ErrConflict.
	UpdateStatus(ctx context.Context, id, status string) (repository.UpdateResult, error)

	Delete(ctx context.Context, id string) (repository.DeleteResult, error)
}

type requestService struct {
	repo     repository.RequestRepository
	validate *validator.Validate
}

// NewRequestService constructs a RequestService over the given store adapter.
func NewRequestService(repo repository.RequestRepository) RequestService {
	return &requestService{repo: repo, validate: newValidator()}
}

func (s *requestService) Create(ctx context.Context, in CreateRequestInput) (*model.FoodRequest, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fieldErr(err)
	}
	now := time.Now().UTC()
	req := &model.FoodRequest{
		FoodID:         in.FoodID,
		UserEmail:      strings.TrimSpace(in.UserEmail),
		Status:         model.RequestPending,
		RequesterName:  in.RequesterName,
		RequesterImage: in.RequesterImage,
		ContactNumber:  in.ContactNumber,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	stored, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, storeErr("create request", err)
	}
	return stored, nil
}

func (s *requestService) ListByUser(ctx context.Context, email string) ([]model.FoodRequest, error) {
	reqs, err := s.repo.FindByUser(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, storeErr("list user requests", err)
	}
	return nonNil(reqs), nil
}

func (s *requestService) ListByFood(ctx context.Context, foodID string) ([]model.FoodRequest, error) {
	reqs, err := s.repo.FindByFood(ctx, foodID)
	if err != nil {
		return nil, storeErr("list food requests", err)
	}
	return nonNil(reqs), nil
}

func (s *requestService) UpdateStatus(ctx context.Context, id, status string) (repository.UpdateResult, error) {
	if !s.repo.ValidID(id) {
		return repository.UpdateResult{}, ErrInvalidID
	}
	to, ok := model.ParseRequestStatus(status)
	if !ok {
		return repository.UpdateResult{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}

	res, err := s.repo.UpdateStatus(ctx, id, to, []model.RequestStatus{model.RequestPending, to})
	if err != nil {
		return repository.UpdateResult{}, storeErr("update request status", err)
	}
	if res.MatchedCount > 0 {
		return res, nil
	}

	// Nothing matched: either the id is unknown or the request already left Pending.
	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.UpdateResult{}, fmt.Errorf("update request status: %w", ErrNotFound)
		}
		return repository.UpdateResult{}, storeErr("update request status", err)
	}
	if cur.Status.Terminal() {
		return repository.UpdateResult{}, fmt.Errorf("request is already %s and cannot become %s: %w", cur.Status, to, ErrConflict)
	}
	// Still Pending: another writer moved it between the update and the lookup.
	return repository.UpdateResult{}, fmt.Errorf("request changed while updating, retry: %w", ErrConflict)
}

func (s *requestService) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	if !s.repo.ValidID(id) {
		return repository.DeleteResult{}, ErrInvalidID
	}
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return repository.DeleteResult{}, storeErr("delete request", err)
	}
	if res.DeletedCount == 0 {
		return res, fmt.Errorf("delete request: %w", ErrNotFound)
	}
	return res, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
	"github.com/Azizul-haque1/plate-share-server/internal/storage"
)

// PhotoURLExpiry bounds the lifetime of presigned photo links.
const PhotoURLExpiry = 15 * time.Minute

// dateLayouts are the accepted expire_date formats.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// CreateFoodInput is the payload of a new listing.
type CreateFoodInput struct {
	Name            string `json:"food_name" validate:"required,max=200"`
	Image           string `json:"food_image" validate:"omitempty,url"`
	Quantity        *int   `json:"food_quantity" validate:"required,min=0,max=2147483647"`
	PickupLocation  string `json:"pickup_location" validate:"required,max=200"`
	ExpireDate      string `json:"expire_date" validate:"required"`
	AdditionalNotes string `json:"additional_notes" validate:"max=2000"`
	Status          string `json:"food_status"`
	DonatorEmail    string `json:"donator_email" validate:"required,email"`
	DonatorName     string `json:"donator_name"`
	DonatorImage    string `json:"donator_image" validate:"omitempty,url"`
}

// UpdateFoodInput is a partial update. Absent fields are left untouched.
type UpdateFoodInput struct {
	Name            *string `json:"food_name" validate:"omitempty,min=1,max=200"`
	Image           *string `json:"food_image" validate:"omitempty,url"`
	Quantity        *int    `json:"food_quantity" validate:"omitempty,min=0,max=2147483647"`
	PickupLocation  *string `json:"pickup_location" validate:"omitempty,min=1,max=200"`
	ExpireDate      *string `json:"expire_date" validate:"omitempty,min=1"`
	AdditionalNotes *string `json:"additional_notes" validate:"omitempty,max=2000"`
	Status          *string `json:"food_status"`
	DonatorName     *string `json:"donator_name"`
	DonatorImage    *string `json:"donator_image" validate:"omitempty,url"`
}

// StatusOnly reports whether the body carries food_status and nothing else.
func (in UpdateFoodInput) StatusOnly() bool {
	return in.Status != nil && in == UpdateFoodInput{Status: in.Status}
}

// FoodService is the write side of the food catalogue plus photo handling.
type FoodService interface {
	Get(ctx context.Context, id string) (*model.FoodItem, error)

	// Create stores a new item; status defaults to Available.
	Create(ctx context.Context, in CreateFoodInput) (*model.FoodItem, error)

	// Update applies a partial update. At least one field must be present.
	Update(ctx context.Context, id string, in UpdateFoodInput) (repository.UpdateResult, error)

	// UpdateStatus sets the status only. Any value of the closed set is accepted.
	UpdateStatus(ctx context.Context, id, status string) (repository.UpdateResult, error)

	// Delete removes the item and its uploaded photo.
	Delete(ctx context.Context, id string) (repository.DeleteResult, error)

	// UploadImage stores a photo for the item and returns its object key.
	// The object is removed again if the item cannot be updated.
	UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) (string, error)

	// ImageURL returns a presigned download link for the item's photo.
	ImageURL(ctx context.Context, id string) (string, error)
}

type foodService struct {
	repo     repository.FoodRepository
	store    storage.Storage
	validate *validator.Validate
}

// NewFoodService constructs a FoodService. store may be storage.Disabled.
func NewFoodService(repo repository.FoodRepository, store storage.Storage) FoodService {
	return &foodService{repo: repo, store: store, validate: newValidator()}
}

func (s *foodService) Get(ctx context.Context, id string) (*model.FoodItem, error) {
	if !s.repo.ValidID(id) {
		return nil, ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get food", err)
	}
	return item, nil
}

func (s *foodService) Create(ctx context.Context, in CreateFoodInput) (*model.FoodItem, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fieldErr(err)
	}
	expire, err := parseExpireDate(in.ExpireDate)
	if err != nil {
		return nil, err
	}
	status := model.FoodAvailable
	if in.Status != "" {
		if status, err = parseFoodStatus(in.Status); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	item := &model.FoodItem{
		Name:            strings.TrimSpace(in.Name),
		Image:           in.Image,
		Quantity:        *in.Quantity,
		PickupLocation:  strings.TrimSpace(in.PickupLocation),
		ExpireDate:      expire,
		AdditionalNotes: in.AdditionalNotes,
		Status:          status,
		DonatorEmail:    strings.TrimSpace(in.DonatorEmail),
		DonatorName:     in.DonatorName,
		DonatorImage:    in.DonatorImage,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	stored, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, storeErr("create food", err)
	}
	return stored, nil
}

func (s *foodService) Update(ctx context.Context, id string, in UpdateFoodInput) (repository.UpdateResult, error) {
	if !s.repo.ValidID(id) {
		return repository.UpdateResult{}, ErrInvalidID
	}
	if err := s.validate.Struct(in); err != nil {
		return repository.UpdateResult{}, fieldErr(err)
	}
	p, err := in.patch()
	if err != nil {
		return repository.UpdateResult{}, err
	}
	if p.IsEmpty() {
		return repository.UpdateResult{}, &ValidationError{Field: "body", Reason: "at least one field is required"}
	}
	return s.apply(ctx, "update food", id, p)
}

func (s *foodService) UpdateStatus(ctx context.Context, id, status string) (repository.UpdateResult, error) {
	if !s.repo.ValidID(id) {
		return repository.UpdateResult{}, ErrInvalidID
	}
	st, err := parseFoodStatus(status)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return s.apply(ctx, "update food status", id, model.FoodPatch{Status: &st})
}

func (s *foodService) apply(ctx context.Context, op, id string, p model.FoodPatch) (repository.UpdateResult, error) {
	res, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return repository.UpdateResult{}, storeErr(op, err)
	}
	if res.MatchedCount == 0 {
		return res, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return res, nil
}

func (s *foodService) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	if !s.repo.ValidID(id) {
		return repository.DeleteResult{}, ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return repository.DeleteResult{}, storeErr("delete food", err)
	}
	// Remove the photo first so a failure keeps the row that references it.
	if item.ImageKey != "" {
		if err := s.store.Delete(ctx, item.ImageKey); err != nil && !errors.Is(err, storage.ErrDisabled) {
			return repository.DeleteResult{}, fmt.Errorf("delete photo: %w", err)
		}
	}
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return repository.DeleteResult{}, storeErr("delete food", err)
	}
	if res.DeletedCount == 0 {
		return res, fmt.Errorf("delete food: %w", ErrNotFound)
	}
	return res, nil
}

func (s *foodService) UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) (string, error) {
	if !s.repo.ValidID(id) {
		return "", ErrInvalidID
	}
	if r == nil {
		return "", &ValidationError{Field: "file", Reason: "is required"}
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", storeErr("upload photo", err)
	}

	key := path.Join("foods", id, uuid.New().String()+strings.ToLower(filepath.Ext(filename)))
	obj, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return "", ErrStorageDisabled
		}
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	res, err := s.repo.Update(ctx, id, model.FoodPatch{ImageKey: &obj.Key})
	if err == nil && res.MatchedCount == 0 {
		err = repository.ErrNotFound
	}
	if err != nil {
		if delErr := s.store.Delete(ctx, obj.Key); delErr != nil {
			return "", fmt.Errorf("save photo key failed: %v; rollback delete failed: %v", err, delErr)
		}
		return "", storeErr("save photo key", err)
	}

	if item.ImageKey != "" && item.ImageKey != obj.Key {
		if err := s.store.Delete(ctx, item.ImageKey); err != nil {
			slog.WarnContext(ctx, "stale photo not removed", "food_id", id, "key", item.ImageKey, "error", err)
		}
	}
	return obj.Key, nil
}

func (s *foodService) ImageURL(ctx context.Context, id string) (string, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if item.ImageKey == "" {
		return "", fmt.Errorf("food photo: %w", ErrNotFound)
	}
	u, err := s.store.PresignGet(ctx, item.ImageKey, PhotoURLExpiry)
	if err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return "", ErrStorageDisabled
		}
		return "", fmt.Errorf("presign photo: %w", err)
	}
	return u, nil
}

func (in UpdateFoodInput) patch() (model.FoodPatch, error) {
	p := model.FoodPatch{
		Name:            trimmed(in.Name),
		Image:           in.Image,
		Quantity:        in.Quantity,
		PickupLocation:  trimmed(in.PickupLocation),
		AdditionalNotes: in.AdditionalNotes,
		DonatorName:     in.DonatorName,
		DonatorImage:    in.DonatorImage,
	}
	if in.ExpireDate != nil {
		t, err := parseExpireDate(*in.ExpireDate)
		if err != nil {
			return model.FoodPatch{}, err
		}
		p.ExpireDate = &t
	}
	if in.Status != nil {
		st, err := parseFoodStatus(*in.Status)
		if err != nil {
			return model.FoodPatch{}, err
		}
		p.Status = &st
	}
	return p, nil
}

func parseFoodStatus(s string) (model.FoodStatus, error) {
	st, ok := model.ParseFoodStatus(s)
	if !ok {
		return "", &ValidationError{Field: "food_status", Reason: fmt.Sprintf("unknown status %q", s)}
	}
	return st, nil
}

func parseExpireDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &ValidationError{Field: "expire_date", Reason: "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

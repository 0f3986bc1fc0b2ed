package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
	"github.com/Azizul-haque1/plate-share-server/internal/service"
)

type MockFoodService struct {
	mock.Mock
}

func (m *MockFoodService) Get(ctx context.Context, id string) (*model.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodService) Create(ctx context.Context, in service.CreateFoodInput) (*model.FoodItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodService) Update(ctx context.Context, id string, in service.UpdateFoodInput) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockFoodService) UpdateStatus(ctx context.Context, id, status string) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockFoodService) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.DeleteResult), args.Error(1)
}

func (m *MockFoodService) UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) (string, error) {
	args := m.Called(ctx, id, r, filename, contentType, size)
	return args.String(0), args.Error(1)
}

func (m *MockFoodService) ImageURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

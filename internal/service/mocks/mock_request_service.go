package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
	"github.com/Azizul-haque1/plate-share-server/internal/service"
)

type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Create(ctx context.Context, in service.CreateRequestInput) (*model.FoodRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodRequest), args.Error(1)
}

func (m *MockRequestService) ListByUser(ctx context.Context, email string) ([]model.FoodRequest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodRequest), args.Error(1)
}

func (m *MockRequestService) ListByFood(ctx context.Context, foodID string) ([]model.FoodRequest, error) {
	args := m.Called(ctx, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodRequest), args.Error(1)
}

func (m *MockRequestService) UpdateStatus(ctx context.Context, id, status string) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockRequestService) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.DeleteResult), args.Error(1)
}

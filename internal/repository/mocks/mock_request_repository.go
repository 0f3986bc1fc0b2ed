package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) ValidID(id string) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockRequestRepository) Create(ctx context.Context, r *model.FoodRequest) (*model.FoodRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodRequest), args.Error(1)
}

func (m *MockRequestRepository) FindByID(ctx context.Context, id string) (*model.FoodRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodRequest), args.Error(1)
}

func (m *MockRequestRepository) FindByUser(ctx context.Context, email string) ([]model.FoodRequest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodRequest), args.Error(1)
}

func (m *MockRequestRepository) FindByFood(ctx context.Context, foodID string) ([]model.FoodRequest, error) {
	args := m.Called(ctx, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodRequest), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id string, to model.RequestStatus, from []model.RequestStatus) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, to, from)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.DeleteResult), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) ValidID(id string) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockFoodRepository) Find(ctx context.Context, f repository.FoodFilter, s repository.SortSpec, pq repository.PageQuery) ([]model.FoodItem, error) {
	args := m.Called(ctx, f, s, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) Count(ctx context.Context, f repository.FoodFilter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id string) (*model.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) Create(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) Update(ctx context.Context, id string, p model.FoodPatch) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.DeleteResult), args.Error(1)
}

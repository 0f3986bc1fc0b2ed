package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/query"
	"github.com/Azizul-haque1/plate-share-server/internal/service"
)

type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) List(ctx context.Context, p query.Params) (*service.FoodListResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FoodListResult), args.Error(1)
}

func (m *MockListingService) Featured(ctx context.Context) ([]model.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodItem), args.Error(1)
}

func (m *MockListingService) ListByDonor(ctx context.Context, email string) ([]model.FoodItem, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodItem), args.Error(1)
}

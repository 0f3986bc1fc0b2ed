package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/query"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
	repoMocks "github.com/Azizul-haque1/plate-share-server/internal/repository/mocks"
)

func foods(n int) []model.FoodItem {
	items := make([]model.FoodItem, n)
	for i := range items {
		items[i] = model.FoodItem{ID: string(rune('a' + i)), Status: model.FoodAvailable}
	}
	return items
}

func availableFilter() repository.FoodFilter {
	st := model.FoodAvailable
	return repository.FoodFilter{Status: &st}
}

func TestListingService_List(t *testing.T) {
	defaultSort := repository.SortSpec{Field: repository.SortByExpireDate}

	tests := []struct {
		name      string
		params    query.Params
		page      repository.PageQuery
		items     []model.FoodItem
		total     int
		wantLen   int
		wantPage  int
		wantPages int
	}{
		{
			name:      "second page of twenty available items",
			params:    query.Params{Status: "Available", Page: "2", PageSize: "12"},
			page:      repository.PageQuery{Limit: 12, Offset: 12},
			items:     foods(8),
			total:     20,
			wantLen:   8,
			wantPage:  2,
			wantPages: 2,
		},
		{
			name:      "defaults",
			params:    query.Params{},
			page:      repository.PageQuery{Limit: 12, Offset: 0},
			items:     foods(12),
			total:     13,
			wantLen:   12,
			wantPage:  1,
			wantPages: 2,
		},
		{
			name:      "exact multiple of page size",
			params:    query.Params{PageSize: "5"},
			page:      repository.PageQuery{Limit: 5, Offset: 0},
			items:     foods(5),
			total:     10,
			wantLen:   5,
			wantPage:  1,
			wantPages: 2,
		},
		{
			name:      "page past the end",
			params:    query.Params{Page: "9", PageSize: "5"},
			page:      repository.PageQuery{Limit: 5, Offset: 40},
			items:     nil,
			total:     10,
			wantLen:   0,
			wantPage:  9,
			wantPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockFoodRepository)
			mRepo.On("Find", mock.Anything, availableFilter(), defaultSort, tt.page).Return(tt.items, nil)
			mRepo.On("Count", mock.Anything, availableFilter()).Return(tt.total, nil)

			svc := NewListingService(mRepo, 0)
			res, err := svc.List(context.Background(), tt.params)

			require.NoError(t, err)
			assert.Len(t, res.Foods, tt.wantLen)
			assert.NotNil(t, res.Foods)
			assert.Equal(t, tt.total, res.Total)
			assert.Equal(t, tt.wantPage, res.Page)
			assert.Equal(t, tt.wantPages, res.TotalPages)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestListingService_List_EmptyResult(t *testing.T) {
	mRepo := new(repoMocks.MockFoodRepository)
	mRepo.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	mRepo.On("Count", mock.Anything, mock.Anything).Return(0, nil)

	res, err := NewListingService(mRepo, 0).List(context.Background(), query.Params{Search: "caviar"})

	require.NoError(t, err)
	assert.Equal(t, []model.FoodItem{}, res.Foods)
	assert.Zero(t, res.Total)
	assert.Zero(t, res.TotalPages)
}

func TestListingService_List_RejectsBadPageBeforeStore(t *testing.T) {
	mRepo := new(repoMocks.MockFoodRepository)

	_, err := NewListingService(mRepo, 0).List(context.Background(), query.Params{Page: "abc"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "page", ve.Field)
	mRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mRepo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestListingService_List_StoreFailure(t *testing.T) {
	mRepo := new(repoMocks.MockFoodRepository)
	mRepo.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	mRepo.On("Count", mock.Anything, mock.Anything).Return(0, nil).Maybe()

	_, err := NewListingService(mRepo, 0).List(context.Background(), query.Params{})

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestListingService_List_PassesSortAndFilter(t *testing.T) {
	want := repository.FoodFilter{NameContains: "rice", PickupLocation: "Dhaka"}
	sort := repository.SortSpec{Field: repository.SortByQuantity, Desc: true}

	mRepo := new(repoMocks.MockFoodRepository)
	mRepo.On("Find", mock.Anything, want, sort, repository.PageQuery{Limit: 12}).Return(foods(1), nil)
	mRepo.On("Count", mock.Anything, want).Return(1, nil)

	res, err := NewListingService(mRepo, 0).List(context.Background(), query.Params{
		Search: " rice ", Location: "Dhaka", Status: "all", Sort: "quantity-desc",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalPages)
	mRepo.AssertExpectations(t)
}

func TestListingService_Featured(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockFoodRepository)
	mRepo.On("Find", ctx, availableFilter(),
		repository.SortSpec{Field: repository.SortByQuantity, Desc: true},
		repository.PageQuery{Limit: 6},
	).Return(foods(6), nil)

	items, err := NewListingService(mRepo, -1).Featured(ctx)

	require.NoError(t, err)
	assert.Len(t, items, 6)
	mRepo.AssertExpectations(t)
}

func TestListingService_ListByDonor(t *testing.T) {
	ctx := context.Background()

	t.Run("all statuses, soonest expiry first", func(t *testing.T) {
		mRepo := new(repoMocks.MockFoodRepository)
		mRepo.On("Find", ctx, repository.FoodFilter{DonatorEmail: "d@x.org"},
			repository.SortSpec{Field: repository.SortByExpireDate}, repository.PageQuery{},
		).Return(nil, nil)

		items, err := NewListingService(mRepo, 6).ListByDonor(ctx, " d@x.org ")

		require.NoError(t, err)
		assert.Equal(t, []model.FoodItem{}, items)
		mRepo.AssertExpectations(t)
	})

	t.Run("email required", func(t *testing.T) {
		mRepo := new(repoMocks.MockFoodRepository)

		_, err := NewListingService(mRepo, 6).ListByDonor(ctx, "")

		assert.ErrorIs(t, err, ErrValidation)
		mRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

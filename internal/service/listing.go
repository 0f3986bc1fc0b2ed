package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/query"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

// DefaultFeaturedLimit is used when the configured featured limit is not positive.
const DefaultFeaturedLimit = 6

// FoodListResult is one page of the food listing.
type FoodListResult struct {
	Foods      []model.FoodItem `json:"foods"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// ListingService is the read side of the food catalogue.
type ListingService interface {
	// List returns one page of items matching p with the total match count.
	// Page and count are read concurrently and may observe different snapshots.
	List(ctx context.Context, p query.Params) (*FoodListResult, error)

	// Featured returns the available items with the largest quantity.
	Featured(ctx context.Context) ([]model.FoodItem, error)

	// ListByDonor returns every item of one donor, soonest expiry first.
	ListByDonor(ctx context.Context, email string) ([]model.FoodItem, error)
}

type listingService struct {
	repo          repository.FoodRepository
	featuredLimit int
}

// NewListingService constructs a ListingService over the given store adapter.
func NewListingService(repo repository.FoodRepository, featuredLimit int) ListingService {
	if featuredLimit <= 0 {
		featuredLimit = DefaultFeaturedLimit
	}
	return &listingService{repo: repo, featuredLimit: featuredLimit}
}

func (s *listingService) List(ctx context.Context, p query.Params) (*FoodListResult, error) {
	d, err := query.Build(p)
	if err != nil {
		return nil, paramErr(err)
	}

	var (
		items []model.FoodItem
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.Find(gctx, d.Filter, d.Sort, d.PageQuery())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, d.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeErr("list foods", err)
	}

	res := &FoodListResult{Foods: items, Total: total, Page: d.Page}
	if total == 0 || res.Foods == nil {
		res.Foods = []model.FoodItem{}
	}
	if total > 0 {
		res.TotalPages = (total + d.Limit - 1) / d.Limit
	}
	return res, nil
}

func (s *listingService) Featured(ctx context.Context) ([]model.FoodItem, error) {
	available := model.FoodAvailable
	items, err := s.repo.Find(ctx,
		repository.FoodFilter{Status: &available},
		repository.SortSpec{Field: repository.SortByQuantity, Desc: true},
		repository.PageQuery{Limit: s.featuredLimit},
	)
	if err != nil {
		return nil, storeErr("featured foods", err)
	}
	return nonNil(items), nil
}

func (s *listingService) ListByDonor(ctx context.Context, email string) ([]model.FoodItem, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "is required"}
	}
	items, err := s.repo.Find(ctx,
		repository.FoodFilter{DonatorEmail: email},
		repository.SortSpec{Field: repository.SortByExpireDate},
		repository.PageQuery{},
	)
	if err != nil {
		return nil, storeErr("donor foods", err)
	}
	return nonNil(items), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

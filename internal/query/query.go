// Package query turns raw listing parameters into a validated, store-agnostic descriptor.
package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 100

	// StatusAll lifts the status predicate.
	StatusAll = "all"

	maxSkip = math.MaxInt32
)

// Params are listing inputs as they arrive from the query string.
type Params struct {
	Search   string
	Location string
	Status   string
	Sort     string
	Page     string
	PageSize string
}

// Descriptor is the validated result of Build.
type Descriptor struct {
	Filter repository.FoodFilter
	Sort   repository.SortSpec
	Page   int
	Skip   int
	Limit  int
}

// PageQuery returns the skip/limit pair for the adapter.
func (d Descriptor) PageQuery() repository.PageQuery {
	return repository.PageQuery{Limit: d.Limit, Offset: d.Skip}
}

// ParamError reports a listing parameter that cannot be used.
type ParamError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// Build validates p and fills in defaults. It never touches a store.
func Build(p Params) (Descriptor, error) {
	page, err := positiveInt("page", p.Page, DefaultPage)
	if err != nil {
		return Descriptor{}, err
	}
	size, err := positiveInt("pageSize", p.PageSize, DefaultPageSize)
	if err != nil {
		return Descriptor{}, err
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page-1 > maxSkip/size {
		return Descriptor{}, &ParamError{Param: "page", Value: p.Page, Reason: "out of range"}
	}

	mode := ParseSortMode(p.Sort)
	return Descriptor{
		Filter: Filter(p),
		Sort:   mode.Spec(),
		Page:   page,
		Skip:   (page - 1) * size,
		Limit:  size,
	}, nil
}

// Filter builds the predicate part of p. Blank search and location add nothing.
func Filter(p Params) repository.FoodFilter {
	f := repository.FoodFilter{
		NameContains:   strings.TrimSpace(p.Search),
		PickupLocation: strings.TrimSpace(p.Location),
	}
	if st, ok := statusFilter(p.Status); ok {
		f.Status = &st
	}
	return f
}

// statusFilter returns false only for "all". Unknown statuses fall back to Available.
func statusFilter(raw string) (model.FoodStatus, bool) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, StatusAll) {
		return "", false
	}
	if st, ok := model.ParseFoodStatus(raw); ok {
		return st, true
	}
	return model.FoodAvailable, true
}

// positiveInt parses raw as a page number or size. Empty and zero mean def.
func positiveInt(name, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParamError{Param: name, Value: raw, Reason: "must be a positive integer"}
	}
	if n < 0 {
		return 0, &ParamError{Param: name, Value: raw, Reason: "must not be negative"}
	}
	if n == 0 {
		return def, nil
	}
	return n, nil
}

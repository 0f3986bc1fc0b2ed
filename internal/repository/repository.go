// Package repository contains the store adapter contracts shared by every backend.
// Implementations live in subpackages (postgres, mongo) inside this directory.
package repository

import "errors"

var (
	// ErrNotFound is returned when an id matches no stored document.
	ErrNotFound = errors.New("record not found")
)

// PageQuery holds skip/limit pagination parameters. A zero Limit means no limit.
type PageQuery struct {
	Limit  int
	Offset int
}

// SortField names a sortable food attribute.
type SortField int

const (
	// SortByID orders by id only, the natural order of the store.
	SortByID SortField = iota
	SortByExpireDate
	SortByQuantity
)

// SortSpec is a single-key ordering. Adapters always append id as a tie-breaker
// so a page boundary is stable while the collection is unchanged.
type SortSpec struct {
	Field SortField
	Desc  bool
}

// UpdateResult reports the outcome of an update, in document-store terms.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many documents were removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// IDValidator checks whether a string has the store's native id format.
type IDValidator interface {
	ValidID(id string) bool
}

package query

import (
	"strings"

	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

// SortMode is the closed set of listing orders. The zero value is the default.
type SortMode int

const (
	SortExpireAsc SortMode = iota
	SortNone
	SortExpireDesc
	SortQuantityDesc
)

var sortModes = map[string]SortMode{
	"expireasc":    SortExpireAsc,
	"none":         SortNone,
	"expiredesc":   SortExpireDesc,
	"quantitydesc": SortQuantityDesc,
}

// ParseSortMode maps a sort name to its mode. Matching ignores case, dashes and underscores;
// anything unrecognised is SortExpireAsc.
func ParseSortMode(s string) SortMode {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if m, ok := sortModes[key]; ok {
		return m
	}
	return SortExpireAsc
}

// Spec maps the mode to a store field and direction.
func (m SortMode) Spec() repository.SortSpec {
	switch m {
	case SortNone:
		return repository.SortSpec{Field: repository.SortByID}
	case SortExpireDesc:
		return repository.SortSpec{Field: repository.SortByExpireDate, Desc: true}
	case SortQuantityDesc:
		return repository.SortSpec{Field: repository.SortByQuantity, Desc: true}
	default:
		return repository.SortSpec{Field: repository.SortByExpireDate}
	}
}

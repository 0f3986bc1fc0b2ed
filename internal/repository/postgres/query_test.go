package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

func TestFoodPredicates(t *testing.T) {
	available := model.FoodAvailable

	tests := []struct {
		name      string
		filter    repository.FoodFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no predicate",
			filter:    repository.FoodFilter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "status only",
			filter:    repository.FoodFilter{Status: &available},
			wantWhere: " WHERE food_status = $1",
			wantArgs:  []any{"Available"},
		},
		{
			name: "search, location and status",
			filter: repository.FoodFilter{
				NameContains:   "bread",
				PickupLocation: "Dhaka",
				Status:         &available,
			},
			wantWhere: ` WHERE food_name ILIKE $1 ESCAPE '\' AND pickup_location = $2 AND food_status = $3`,
			wantArgs:  []any{"%bread%", "Dhaka", "Available"},
		},
		{
			name:      "wildcards in search are literal",
			filter:    repository.FoodFilter{NameContains: `50%_off\`},
			wantWhere: ` WHERE food_name ILIKE $1 ESCAPE '\'`,
			wantArgs:  []any{`%50\%\_off\\%`},
		},
		{
			name:      "donor scope",
			filter:    repository.FoodFilter{DonatorEmail: "donor@example.com"},
			wantWhere: " WHERE donator_email = $1",
			wantArgs:  []any{"donor@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := foodPredicates(tt.filter)
			assert.Equal(t, tt.wantWhere, p.where())
			assert.Equal(t, tt.wantArgs, p.args)
		})
	}
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t, " ORDER BY expire_date ASC, id ASC", orderBy(repository.SortSpec{Field: repository.SortByExpireDate}))
	assert.Equal(t, " ORDER BY expire_date DESC, id ASC", orderBy(repository.SortSpec{Field: repository.SortByExpireDate, Desc: true}))
	assert.Equal(t, " ORDER BY food_quantity DESC, id ASC", orderBy(repository.SortSpec{Field: repository.SortByQuantity, Desc: true}))
	assert.Equal(t, " ORDER BY id ASC", orderBy(repository.SortSpec{}))
}

func TestPaginate(t *testing.T) {
	clause, args := paginate(repository.PageQuery{Limit: 12, Offset: 24}, []any{"x"})
	assert.Equal(t, " LIMIT $2 OFFSET $3", clause)
	assert.Equal(t, []any{"x", 12, 24}, args)

	clause, args = paginate(repository.PageQuery{Limit: 12}, nil)
	assert.Equal(t, " LIMIT $1", clause)
	assert.Equal(t, []any{12}, args)

	clause, args = paginate(repository.PageQuery{}, nil)
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestValidUUID(t *testing.T) {
	assert.True(t, validUUID("0b6f1a52-6e0a-4c3e-9d8a-1f2b3c4d5e6f"))
	assert.False(t, validUUID("X"))
	assert.False(t, validUUID("64b7f0c2a1b2c3d4e5f60718"))
}

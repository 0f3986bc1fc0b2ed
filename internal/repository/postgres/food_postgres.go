package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

const foodColumns = `id, food_name, food_image, food_image_key, food_quantity, pickup_location, expire_date,
	additional_notes, food_status, donator_email, donator_name, donator_image, created_at, updated_at`

// FoodPostgres is a PostgreSQL implementation of repository.FoodRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FoodPostgres struct {
	db *sql.DB
}

// NewFoodPostgres creates a new FoodPostgres repository.
func NewFoodPostgres(db *sql.DB) *FoodPostgres {
	return &FoodPostgres{db: db}
}

var _ repository.FoodRepository = (*FoodPostgres)(nil)

func (r *FoodPostgres) ValidID(id string) bool {
	return validUUID(id)
}

// Find returns one page of foods matching f.
func (r *FoodPostgres) Find(ctx context.Context, f repository.FoodFilter, s repository.SortSpec, pq repository.PageQuery) ([]model.FoodItem, error) {
	p := foodPredicates(f)
	limit, args := paginate(pq, p.args)
	q := "SELECT " + foodColumns + " FROM foods" + p.where() + orderBy(s) + limit

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FoodItem, 0)
	for rows.Next() {
		item, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of foods matching f.
func (r *FoodPostgres) Count(ctx context.Context, f repository.FoodFilter) (int, error) {
	p := foodPredicates(f)
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM foods"+p.where(), p.args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// FindByID fetches a single food by its ID.
func (r *FoodPostgres) FindByID(ctx context.Context, id string) (*model.FoodItem, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+foodColumns+" FROM foods WHERE id = $1", id)
	item, err := scanFood(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create inserts a food row; the id comes from the column default.
func (r *FoodPostgres) Create(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error) {
	q := `
		INSERT INTO foods (food_name, food_image, food_image_key, food_quantity, pickup_location, expire_date,
			additional_notes, food_status, donator_email, donator_name, donator_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + foodColumns
	row := r.db.QueryRowContext(ctx, q,
		item.Name,
		item.Image,
		item.ImageKey,
		item.Quantity,
		item.PickupLocation,
		item.ExpireDate,
		item.AdditionalNotes,
		string(item.Status),
		item.DonatorEmail,
		item.DonatorName,
		item.DonatorImage,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return scanFood(row)
}

// Update sets the non-nil patch fields and bumps updated_at.
func (r *FoodPostgres) Update(ctx context.Context, id string, p model.FoodPatch) (repository.UpdateResult, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Name != nil {
		set("food_name", *p.Name)
	}
	if p.Image != nil {
		set("food_image", *p.Image)
	}
	if p.ImageKey != nil {
		set("food_image_key", *p.ImageKey)
	}
	if p.Quantity != nil {
		set("food_quantity", *p.Quantity)
	}
	if p.PickupLocation != nil {
		set("pickup_location", *p.PickupLocation)
	}
	if p.ExpireDate != nil {
		set("expire_date", *p.ExpireDate)
	}
	if p.AdditionalNotes != nil {
		set("additional_notes", *p.AdditionalNotes)
	}
	if p.Status != nil {
		set("food_status", string(*p.Status))
	}
	if p.DonatorName != nil {
		set("donator_name", *p.DonatorName)
	}
	if p.DonatorImage != nil {
		set("donator_image", *p.DonatorImage)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	q := fmt.Sprintf("UPDATE foods SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.UpdateResult{}, err
	}
	// PostgreSQL counts matched rows, so both counters carry the same value.
	return repository.UpdateResult{MatchedCount: n, ModifiedCount: n}, nil
}

// Delete removes a food by ID.
func (r *FoodPostgres) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		return repository.DeleteResult{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.DeleteResult{}, err
	}
	return repository.DeleteResult{DeletedCount: n}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFood(s scanner) (*model.FoodItem, error) {
	var (
		item   model.FoodItem
		status string
	)
	if err := s.Scan(
		&item.ID,
		&item.Name,
		&item.Image,
		&item.ImageKey,
		&item.Quantity,
		&item.PickupLocation,
		&item.ExpireDate,
		&item.AdditionalNotes,
		&status,
		&item.DonatorEmail,
		&item.DonatorName,
		&item.DonatorImage,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	item.Status = model.FoodStatus(status)
	return &item, nil
}

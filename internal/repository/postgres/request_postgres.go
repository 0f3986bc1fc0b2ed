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

const requestColumns = `id, food_id, user_email, status, requester_name, requester_image, contact_number, notes, created_at, updated_at`

// RequestPostgres is a PostgreSQL implementation of repository.RequestRepository.
// food_id is plain text with no foreign key: requests keep a weak reference to foods.
type RequestPostgres struct {
	db *sql.DB
}

// NewRequestPostgres creates a new RequestPostgres repository.
func NewRequestPostgres(db *sql.DB) *RequestPostgres {
	return &RequestPostgres{db: db}
}

var _ repository.RequestRepository = (*RequestPostgres)(nil)

func (r *RequestPostgres) ValidID(id string) bool {
	return validUUID(id)
}

// Create inserts a request row and returns the stored record.
func (r *RequestPostgres) Create(ctx context.Context, req *model.FoodRequest) (*model.FoodRequest, error) {
	q := `
		INSERT INTO food_requests (food_id, user_email, status, requester_name, requester_image, contact_number, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + requestColumns
	row := r.db.QueryRowContext(ctx, q,
		req.FoodID,
		req.UserEmail,
		string(req.Status),
		req.RequesterName,
		req.RequesterImage,
		req.ContactNumber,
		req.Notes,
		req.CreatedAt,
		req.UpdatedAt,
	)
	return scanRequest(row)
}

// FindByID fetches a single request by its ID.
func (r *RequestPostgres) FindByID(ctx context.Context, id string) (*model.FoodRequest, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+requestColumns+" FROM food_requests WHERE id = $1", id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *RequestPostgres) FindByUser(ctx context.Context, email string) ([]model.FoodRequest, error) {
	p := &predicates{}
	if email != "" {
		p.add("user_email = $%d", email)
	}
	return r.list(ctx, "SELECT "+requestColumns+" FROM food_requests"+p.where()+" ORDER BY created_at DESC, id ASC", p.args...)
}

func (r *RequestPostgres) FindByFood(ctx context.Context, foodID string) ([]model.FoodRequest, error) {
	return r.list(ctx, "SELECT "+requestColumns+" FROM food_requests WHERE food_id = $1 ORDER BY created_at ASC, id ASC", foodID)
}

// UpdateStatus is a conditional update guarded by the allowed source statuses.
func (r *RequestPostgres) UpdateStatus(ctx context.Context, id string, to model.RequestStatus, from []model.RequestStatus) (repository.UpdateResult, error) {
	args := []any{string(to), id}
	q := "UPDATE food_requests SET status = $1, updated_at = now() WHERE id = $2"
	if len(from) > 0 {
		marks := make([]string, 0, len(from))
		for _, st := range from {
			args = append(args, string(st))
			marks = append(marks, fmt.Sprintf("$%d", len(args)))
		}
		q += " AND status IN (" + strings.Join(marks, ", ") + ")"
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return repository.UpdateResult{MatchedCount: n, ModifiedCount: n}, nil
}

// Delete removes a request by ID.
func (r *RequestPostgres) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM food_requests WHERE id = $1`, id)
	if err != nil {
		return repository.DeleteResult{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.DeleteResult{}, err
	}
	return repository.DeleteResult{DeletedCount: n}, nil
}

func (r *RequestPostgres) list(ctx context.Context, q string, args ...any) ([]model.FoodRequest, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.FoodRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRequest(s scanner) (*model.FoodRequest, error) {
	var (
		req    model.FoodRequest
		status string
	)
	if err := s.Scan(
		&req.ID,
		&req.FoodID,
		&req.UserEmail,
		&status,
		&req.RequesterName,
		&req.RequesterImage,
		&req.ContactNumber,
		&req.Notes,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	req.Status = model.RequestStatus(status)
	return &req, nil
}

package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

var requestRowColumns = []string{
	"id", "food_id", "user_email", "status", "requester_name", "requester_image", "contact_number", "notes", "created_at", "updated_at",
}

func requestRow(rows *sqlmock.Rows, id, foodID, email, status string) *sqlmock.Rows {
	now := time.Now().UTC()
	return rows.AddRow(id, foodID, email, status, "", "", "", "", now, now)
}

func TestRequestPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRequestPostgres(db)
	now := time.Now().UTC()
	req := &model.FoodRequest{
		FoodID:    "X",
		UserEmail: "a@b.com",
		Status:    model.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO food_requests").
		WithArgs("X", "a@b.com", "Pending", "", "", "", "", now, now).
		WillReturnRows(requestRow(sqlmock.NewRows(requestRowColumns), "req-id", "X", "a@b.com", "Pending"))

	stored, err := repo.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "req-id", stored.ID)
	assert.Equal(t, model.RequestPending, stored.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRequestPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM food_requests WHERE id = ?").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	req, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, req)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestPostgres_FindByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRequestPostgres(db)
	ctx := context.Background()

	t.Run("scoped", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM food_requests WHERE user_email = $1 ORDER BY created_at DESC, id ASC")).
			WithArgs("a@b.com").
			WillReturnRows(requestRow(sqlmock.NewRows(requestRowColumns), "r1", "X", "a@b.com", "Pending"))

		out, err := repo.FindByUser(ctx, "a@b.com")

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "a@b.com", out[0].UserEmail)
	})

	t.Run("unscoped when email is empty", func(t *testing.T) {
		rows := sqlmock.NewRows(requestRowColumns)
		requestRow(rows, "r1", "X", "a@b.com", "Pending")
		requestRow(rows, "r2", "Y", "c@d.com", "Rejected")
		mock.ExpectQuery(regexp.QuoteMeta("FROM food_requests ORDER BY created_at DESC, id ASC")).
			WillReturnRows(rows)

		out, err := repo.FindByUser(ctx, "")

		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestPostgres_FindByFood(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRequestPostgres(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM food_requests WHERE food_id = $1 ORDER BY created_at ASC")).
		WithArgs("food-1").
		WillReturnRows(sqlmock.NewRows(requestRowColumns))

	out, err := repo.FindByFood(context.Background(), "food-1")

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRequestPostgres(db)
	ctx := context.Background()

	t.Run("guarded by source statuses", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE food_requests SET status = $1, updated_at = now() WHERE id = $2 AND status IN ($3, $4)")).
			WithArgs("Accepted", "req-id", "Pending", "Accepted").
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := repo.UpdateStatus(ctx, "req-id", model.RequestAccepted,
			[]model.RequestStatus{model.RequestPending, model.RequestAccepted})

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
	})

	t.Run("unguarded", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE food_requests SET status = $1, updated_at = now() WHERE id = $2")).
			WithArgs("Rejected", "req-id").
			WillReturnResult(sqlmock.NewResult(0, 0))

		res, err := repo.UpdateStatus(ctx, "req-id", model.RequestRejected, nil)

		require.NoError(t, err)
		assert.Zero(t, res.MatchedCount)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRequestPostgres(db)

	mock.ExpectExec("DELETE FROM food_requests WHERE id = ?").
		WithArgs("req-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	res, err := repo.Delete(context.Background(), "req-id")

	assert.NoError(t, err)
	assert.Zero(t, res.DeletedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

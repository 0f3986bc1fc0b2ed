package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

func ctx() context.Context { return context.Background() }

func newTestRequestMongo(mt *mtest.T) *RequestMongo {
	r := NewRequestMongo(mt.DB)
	r.now = func() time.Time { return fixedNow }
	return r
}

func requestFixture(id primitive.ObjectID, status model.RequestStatus) requestDocument {
	return requestDocument{
		ID:        id,
		FoodID:    "X",
		UserEmail: "a@b.com",
		Status:    string(status),
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}

func TestRequestMongo_Create(t *testing.T) {
	mt := newMockT(t)

	mt.Run("stores the food id as given", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		stored, err := repo.Create(ctx(), &model.FoodRequest{FoodID: "X", UserEmail: "a@b.com", Status: model.RequestPending})

		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(stored.ID))
		assert.Equal(mt, "X", stored.FoodID)
		assert.Equal(mt, model.RequestPending, stored.Status)

		var cmd struct {
			Insert    string            `bson:"insert"`
			Documents []requestDocument `bson:"documents"`
		}
		sentCommand(mt, &cmd)
		assert.Equal(mt, RequestsCollection, cmd.Insert)
		require.Len(mt, cmd.Documents, 1)
		assert.Equal(mt, stored.ID, cmd.Documents[0].ID.Hex())
	})
}

func TestRequestMongo_FindByID(t *testing.T) {
	mt := newMockT(t)
	id := primitive.NewObjectID()

	mt.Run("found", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+RequestsCollection, mtest.FirstBatch,
			asD(mt, requestFixture(id, model.RequestAccepted)),
		))

		req, err := repo.FindByID(ctx(), id.Hex())

		require.NoError(mt, err)
		assert.Equal(mt, model.RequestAccepted, req.Status)
	})

	mt.Run("no documents is not found", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+RequestsCollection, mtest.FirstBatch))

		_, err := repo.FindByID(ctx(), id.Hex())

		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestRequestMongo_FindByUser(t *testing.T) {
	mt := newMockT(t)

	mt.Run("scoped to one user, newest first", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+RequestsCollection, mtest.FirstBatch,
			asD(mt, requestFixture(primitive.NewObjectID(), model.RequestPending)),
		))

		reqs, err := repo.FindByUser(ctx(), "a@b.com")

		require.NoError(mt, err)
		assert.Len(mt, reqs, 1)

		var cmd struct {
			Filter bson.D `bson:"filter"`
			Sort   bson.D `bson:"sort"`
		}
		sentCommand(mt, &cmd)
		assert.Equal(mt, bson.D{{Key: "userEmail", Value: "a@b.com"}}, cmd.Filter)
		assert.Equal(mt, []string{"createdAt:-1", "_id:1"}, sortKeys(cmd.Sort))
	})

	mt.Run("empty email lists everything", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+RequestsCollection, mtest.FirstBatch,
			asD(mt, requestFixture(primitive.NewObjectID(), model.RequestPending)),
			asD(mt, requestFixture(primitive.NewObjectID(), model.RequestRejected)),
		))

		reqs, err := repo.FindByUser(ctx(), "")

		require.NoError(mt, err)
		assert.Len(mt, reqs, 2)

		var cmd struct {
			Filter bson.D `bson:"filter"`
		}
		sentCommand(mt, &cmd)
		assert.Empty(mt, cmd.Filter)
	})
}

func TestRequestMongo_FindByFood(t *testing.T) {
	mt := newMockT(t)

	mt.Run("filters on the raw food id", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+RequestsCollection, mtest.FirstBatch))

		reqs, err := repo.FindByFood(ctx(), "X")

		require.NoError(mt, err)
		assert.Empty(mt, reqs)

		var cmd struct {
			Filter bson.D `bson:"filter"`
		}
		sentCommand(mt, &cmd)
		assert.Equal(mt, bson.D{{Key: "foodId", Value: "X"}}, cmd.Filter)
	})
}

func TestRequestMongo_UpdateStatus(t *testing.T) {
	mt := newMockT(t)
	id := primitive.NewObjectID()

	type statusUpdate struct {
		Updates []struct {
			Q struct {
				ID     primitive.ObjectID `bson:"_id"`
				Status struct {
					In []string `bson:"$in"`
				} `bson:"status"`
			} `bson:"q"`
			U struct {
				Set struct {
					Status    string    `bson:"status"`
					UpdatedAt time.Time `bson:"updatedAt"`
				} `bson:"$set"`
			} `bson:"u"`
		} `bson:"updates"`
	}

	mt.Run("guarded by the allowed source statuses", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		res, err := repo.UpdateStatus(ctx(), id.Hex(), model.RequestAccepted,
			[]model.RequestStatus{model.RequestPending, model.RequestAccepted})

		require.NoError(mt, err)
		assert.Equal(mt, repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)

		var cmd statusUpdate
		sentCommand(mt, &cmd)
		require.Len(mt, cmd.Updates, 1)
		assert.Equal(mt, id, cmd.Updates[0].Q.ID)
		assert.Equal(mt, []string{"Pending", "Accepted"}, cmd.Updates[0].Q.Status.In)
		assert.Equal(mt, "Accepted", cmd.Updates[0].U.Set.Status)
		assert.True(mt, fixedNow.Equal(cmd.Updates[0].U.Set.UpdatedAt))
	})

	mt.Run("terminal request matches nothing", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		res, err := repo.UpdateStatus(ctx(), id.Hex(), model.RequestRejected,
			[]model.RequestStatus{model.RequestPending, model.RequestRejected})

		require.NoError(mt, err)
		assert.Zero(mt, res.MatchedCount)
		assert.Zero(mt, res.ModifiedCount)
	})

	mt.Run("malformed id matches nothing without a round trip", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)

		res, err := repo.UpdateStatus(ctx(), "zzz", model.RequestAccepted, nil)

		require.NoError(mt, err)
		assert.Zero(mt, res.MatchedCount)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestRequestMongo_Delete(t *testing.T) {
	mt := newMockT(t)

	mt.Run("deleted", func(mt *mtest.T) {
		repo := newTestRequestMongo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := repo.Delete(ctx(), primitive.NewObjectID().Hex())

		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.DeletedCount)
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMockT(t)

	mt.Run("creates indexes on both collections", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		require.NoError(mt, EnsureIndexes(ctx(), mt.DB))

		seen := map[string]int{}
		for i := 0; i < 2; i++ {
			var cmd struct {
				Coll    string   `bson:"createIndexes"`
				Indexes []bson.M `bson:"indexes"`
			}
			sentCommand(mt, &cmd)
			seen[cmd.Coll] = len(cmd.Indexes)
		}
		assert.Equal(mt, map[string]int{FoodsCollection: 3, RequestsCollection: 2}, seen)
	})

	mt.Run("server error names the collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Message: "unauthorized", Name: "Unauthorized"}))

		err := EnsureIndexes(ctx(), mt.DB)

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "create indexes on ")
	})
}

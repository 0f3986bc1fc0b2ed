package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

// RequestMongo is a MongoDB implementation of repository.RequestRepository.
type RequestMongo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewRequestMongo creates a RequestMongo on the food_requests collection of db.
func NewRequestMongo(db *mongo.Database) *RequestMongo {
	return &RequestMongo{coll: db.Collection(RequestsCollection), now: time.Now}
}

var _ repository.RequestRepository = (*RequestMongo)(nil)

func (r *RequestMongo) ValidID(id string) bool {
	return validObjectID(id)
}

func (r *RequestMongo) Create(ctx context.Context, req *model.FoodRequest) (*model.FoodRequest, error) {
	doc := newRequestDocument(req)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	stored := doc.model()
	return &stored, nil
}

func (r *RequestMongo) FindByID(ctx context.Context, id string) (*model.FoodRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var d requestDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	req := d.model()
	return &req, nil
}

func (r *RequestMongo) FindByUser(ctx context.Context, email string) ([]model.FoodRequest, error) {
	filter := bson.D{}
	if email != "" {
		filter = append(filter, bson.E{Key: "userEmail", Value: email})
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	return r.list(ctx, filter, opts)
}

func (r *RequestMongo) FindByFood(ctx context.Context, foodID string) ([]model.FoodRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	return r.list(ctx, bson.D{{Key: "foodId", Value: foodID}}, opts)
}

func (r *RequestMongo) UpdateStatus(ctx context.Context, id string, to model.RequestStatus, from []model.RequestStatus) (repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, nil
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: string(to)},
		{Key: "updatedAt", Value: r.now().UTC()},
	}}}
	res, err := r.coll.UpdateOne(ctx, statusTransitionFilter(oid, from), update)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return repository.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *RequestMongo) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.DeleteResult{}, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return repository.DeleteResult{}, err
	}
	return repository.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *RequestMongo) list(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]model.FoodRequest, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []requestDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]model.FoodRequest, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

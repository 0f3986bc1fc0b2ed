package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

// FoodMongo is a MongoDB implementation of repository.FoodRepository.
// The collection handle is safe for concurrent use by multiple goroutines.
type FoodMongo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewFoodMongo creates a FoodMongo on the foods collection of db.
func NewFoodMongo(db *mongo.Database) *FoodMongo {
	return &FoodMongo{coll: db.Collection(FoodsCollection), now: time.Now}
}

var _ repository.FoodRepository = (*FoodMongo)(nil)

func (r *FoodMongo) ValidID(id string) bool {
	return validObjectID(id)
}

func (r *FoodMongo) Find(ctx context.Context, f repository.FoodFilter, s repository.SortSpec, pq repository.PageQuery) ([]model.FoodItem, error) {
	cur, err := r.coll.Find(ctx, foodFilter(f), findOptions(s, pq))
	if err != nil {
		return nil, err
	}
	var docs []foodDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]model.FoodItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.model())
	}
	return items, nil
}

func (r *FoodMongo) Count(ctx context.Context, f repository.FoodFilter) (int, error) {
	n, err := r.coll.CountDocuments(ctx, foodFilter(f))
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *FoodMongo) FindByID(ctx context.Context, id string) (*model.FoodItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var d foodDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	item := d.model()
	return &item, nil
}

func (r *FoodMongo) Create(ctx context.Context, item *model.FoodItem) (*model.FoodItem, error) {
	doc := newFoodDocument(item)
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

func (r *FoodMongo) Update(ctx context.Context, id string, p model.FoodPatch) (repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, nil
	}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, foodUpdate(p, r.now().UTC()))
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return repository.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *FoodMongo) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
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

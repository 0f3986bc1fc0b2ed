package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var indexes = map[string][]mongo.IndexModel{
	FoodsCollection: {
		{Keys: bson.D{{Key: "food_status", Value: 1}, {Key: "expire_date", Value: 1}}},
		{Keys: bson.D{{Key: "food_status", Value: 1}, {Key: "food_quantity", Value: -1}}},
		{Keys: bson.D{{Key: "donator_email", Value: 1}}},
	},
	RequestsCollection: {
		{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "foodId", Value: 1}}},
	},
}

// EnsureIndexes creates the listing and lookup indexes. Existing indexes are left as they are.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

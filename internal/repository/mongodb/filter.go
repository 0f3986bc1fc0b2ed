package mongodb

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Azizul-haque1/plate-share-server/internal/model"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

// foodFilter translates the store-agnostic filter into a query document.
func foodFilter(f repository.FoodFilter) bson.D {
	filter := bson.D{}
	if f.NameContains != "" {
		filter = append(filter, bson.E{Key: "food_name", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(f.NameContains),
			Options: "i",
		}})
	}
	if f.PickupLocation != "" {
		filter = append(filter, bson.E{Key: "pickup_location", Value: f.PickupLocation})
	}
	if f.Status != nil {
		filter = append(filter, bson.E{Key: "food_status", Value: string(*f.Status)})
	}
	if f.DonatorEmail != "" {
		filter = append(filter, bson.E{Key: "donator_email", Value: f.DonatorEmail})
	}
	return filter
}

// foodSort always ends on _id so equal keys keep a stable order.
func foodSort(s repository.SortSpec) bson.D {
	dir := 1
	if s.Desc {
		dir = -1
	}
	switch s.Field {
	case repository.SortByExpireDate:
		return bson.D{{Key: "expire_date", Value: dir}, {Key: "_id", Value: 1}}
	case repository.SortByQuantity:
		return bson.D{{Key: "food_quantity", Value: dir}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "_id", Value: dir}}
	}
}

func findOptions(s repository.SortSpec, pq repository.PageQuery) *options.FindOptions {
	opts := options.Find().SetSort(foodSort(s))
	if pq.Offset > 0 {
		opts.SetSkip(int64(pq.Offset))
	}
	if pq.Limit > 0 {
		opts.SetLimit(int64(pq.Limit))
	}
	return opts
}

// foodUpdate renders the $set document for the non-nil patch fields.
func foodUpdate(p model.FoodPatch, now time.Time) bson.D {
	set := bson.D{}
	if p.Name != nil {
		set = append(set, bson.E{Key: "food_name", Value: *p.Name})
	}
	if p.Image != nil {
		set = append(set, bson.E{Key: "food_image", Value: *p.Image})
	}
	if p.ImageKey != nil {
		set = append(set, bson.E{Key: "food_image_key", Value: *p.ImageKey})
	}
	if p.Quantity != nil {
		set = append(set, bson.E{Key: "food_quantity", Value: *p.Quantity})
	}
	if p.PickupLocation != nil {
		set = append(set, bson.E{Key: "pickup_location", Value: *p.PickupLocation})
	}
	if p.ExpireDate != nil {
		set = append(set, bson.E{Key: "expire_date", Value: *p.ExpireDate})
	}
	if p.AdditionalNotes != nil {
		set = append(set, bson.E{Key: "additional_notes", Value: *p.AdditionalNotes})
	}
	if p.Status != nil {
		set = append(set, bson.E{Key: "food_status", Value: string(*p.Status)})
	}
	if p.DonatorName != nil {
		set = append(set, bson.E{Key: "donator_name", Value: *p.DonatorName})
	}
	if p.DonatorImage != nil {
		set = append(set, bson.E{Key: "donator_image", Value: *p.DonatorImage})
	}
	set = append(set, bson.E{Key: "updated_at", Value: now})
	return bson.D{{Key: "$set", Value: set}}
}

// statusTransitionFilter matches the request only while its status is one of from.
func statusTransitionFilter(id primitive.ObjectID, from []model.RequestStatus) bson.D {
	filter := bson.D{{Key: "_id", Value: id}}
	if len(from) > 0 {
		in := make(bson.A, 0, len(from))
		for _, st := range from {
			in = append(in, string(st))
		}
		filter = append(filter, bson.E{Key: "status", Value: bson.D{{Key: "$in", Value: in}}})
	}
	return filter
}

package repositories

import (
	"context"
	"regexp"

	"github.com/petlove/backend/internal/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	summaryProjection = bson.M{"_id": 1, "useCounty": 1, "stateEn": 1, "cityEn": 1, "countyEn": 1}
	refProjection     = bson.M{"_id": 1, "stateEn": 1, "cityEn": 1}
)

// LocationRepository reads the city reference collection.
type LocationRepository interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	Search(ctx context.Context, keyword string, limit int64) ([]models.LocationSummary, error)
	FindSummaries(ctx context.Context, ids []primitive.ObjectID) ([]models.LocationSummary, error)
	FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.LocationRef, error)
}

type MongoLocationRepository struct {
	collection *mongo.Collection
}

func NewMongoLocationRepository(db *mongo.Database) *MongoLocationRepository {
	return &MongoLocationRepository{collection: db.Collection(LocationsCollection)}
}

func (r *MongoLocationRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "count locations")
	}
	return n > 0, nil
}

// Search matches keyword as a case-insensitive substring of the English or
// Ukrainian city name.
func (r *MongoLocationRepository) Search(ctx context.Context, keyword string, limit int64) ([]models.LocationSummary, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"cityEn": re},
		bson.M{"cityUa": re},
	}}
	opts := options.Find().SetProjection(summaryProjection).SetLimit(limit)
	return r.findSummaries(ctx, filter, opts)
}

func (r *MongoLocationRepository) FindSummaries(ctx context.Context, ids []primitive.ObjectID) ([]models.LocationSummary, error) {
	if len(ids) == 0 {
		return []models.LocationSummary{}, nil
	}
	opts := options.Find().SetProjection(summaryProjection)
	return r.findSummaries(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
}

// FindRefs returns the id/state/city expansion for each id that resolves.
func (r *MongoLocationRepository) FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.LocationRef, error) {
	refs := make(map[primitive.ObjectID]models.LocationRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}
	opts := options.Find().SetProjection(refProjection)
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find location refs")
	}
	defer cursor.Close(ctx)

	var found []models.LocationRef
	if err = cursor.All(ctx, &found); err != nil {
		return nil, errors.Wrap(err, "decode location refs")
	}
	for _, l := range found {
		refs[l.ID] = l
	}
	return refs, nil
}

func (r *MongoLocationRepository) findSummaries(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.LocationSummary, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find locations")
	}
	defer cursor.Close(ctx)

	locations := make([]models.LocationSummary, 0)
	if err = cursor.All(ctx, &locations); err != nil {
		return nil, errors.Wrap(err, "decode locations")
	}
	return locations, nil
}

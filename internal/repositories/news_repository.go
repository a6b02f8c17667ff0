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

type NewsRepository interface {
	List(ctx context.Context, keyword string, skip, limit int64) ([]models.News, int64, error)
}

type MongoNewsRepository struct {
	collection *mongo.Collection
}

func NewMongoNewsRepository(db *mongo.Database) *MongoNewsRepository {
	return &MongoNewsRepository{collection: db.Collection(NewsCollection)}
}

// NewsFilter matches keyword against title or text, case-insensitively.
func NewsFilter(keyword string) bson.M {
	if keyword == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"title": re},
		bson.M{"text": re},
	}}
}

// List returns a page of news, newest first, and the total match count.
func (r *MongoNewsRepository) List(ctx context.Context, keyword string, skip, limit int64) ([]models.News, int64, error) {
	filter := NewsFilter(keyword)
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit).
		SetProjection(bson.M{"createdAt": 0, "updatedAt": 0, "__v": 0})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list news")
	}
	defer cursor.Close(ctx)

	news := make([]models.News, 0, limit)
	if err = cursor.All(ctx, &news); err != nil {
		return nil, 0, errors.Wrap(err, "decode news")
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count news")
	}
	return news, total, nil
}

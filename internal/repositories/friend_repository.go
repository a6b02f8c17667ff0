package repositories

import (
	"context"

	"github.com/petlove/backend/internal/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FriendRepository interface {
	List(ctx context.Context) ([]models.Friend, error)
}

type MongoFriendRepository struct {
	collection *mongo.Collection
}

func NewMongoFriendRepository(db *mongo.Database) *MongoFriendRepository {
	return &MongoFriendRepository{collection: db.Collection(FriendsCollection)}
}

// List returns every partner without bookkeeping fields.
func (r *MongoFriendRepository) List(ctx context.Context) ([]models.Friend, error) {
	opts := options.Find().SetProjection(bson.M{"createdAt": 0, "updatedAt": 0, "__v": 0})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "list friends")
	}
	defer cursor.Close(ctx)

	friends := make([]models.Friend, 0)
	if err = cursor.All(ctx, &friends); err != nil {
		return nil, errors.Wrap(err, "decode friends")
	}
	return friends, nil
}

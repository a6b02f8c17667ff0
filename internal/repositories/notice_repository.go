package repositories

import (
	"context"
	"time"

	"github.com/petlove/backend/internal/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NoticeRepository defines the interface for notice data operations
type NoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Notice, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Notice, error)
	List(ctx context.Context, q NoticeQuery) ([]models.Notice, int64, error)
	IncrementPopularity(ctx context.Context, id primitive.ObjectID, delta int) error
	DistinctLocations(ctx context.Context) ([]primitive.ObjectID, error)
}

// MongoNoticeRepository implements NoticeRepository for MongoDB
type MongoNoticeRepository struct {
	collection *mongo.Collection
}

// NewMongoNoticeRepository creates a new MongoNoticeRepository
func NewMongoNoticeRepository(db *mongo.Database) *MongoNoticeRepository {
	return &MongoNoticeRepository{collection: db.Collection(NoticesCollection)}
}

// Create inserts a notice, assigning its id and timestamps.
func (r *MongoNoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	now := time.Now().UTC()
	notice.ID = primitive.NewObjectID()
	notice.CreatedAt = now
	notice.UpdatedAt = now
	if notice.Sex == "" {
		notice.Sex = models.SexUnknown
	}
	if _, err := r.collection.InsertOne(ctx, notice); err != nil {
		return errors.Wrap(err, "insert notice")
	}
	return nil
}

// GetByID retrieves a notice by ID from MongoDB
func (r *MongoNoticeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Notice, error) {
	var notice models.Notice
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find notice")
	}
	return &notice, nil
}

// FindByIDs loads the notices for ids, in the order of ids. Ids that no
// longer resolve are skipped.
func (r *MongoNoticeRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Notice, error) {
	notices := make([]models.Notice, 0, len(ids))
	if len(ids) == 0 {
		return notices, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "find notices by id")
	}
	defer cursor.Close(ctx)

	var found []models.Notice
	if err = cursor.All(ctx, &found); err != nil {
		return nil, errors.Wrap(err, "decode notices")
	}
	byID := make(map[primitive.ObjectID]models.Notice, len(found))
	for _, n := range found {
		byID[n.ID] = n
	}
	for _, id := range ids {
		if n, ok := byID[id]; ok {
			notices = append(notices, n)
		}
	}
	return notices, nil
}

// List runs the filtered, sorted, paginated listing and returns the page
// together with the total number of matching notices.
func (r *MongoNoticeRepository) List(ctx context.Context, q NoticeQuery) ([]models.Notice, int64, error) {
	filter := q.Filter()
	findOptions := options.Find().SetSkip(q.Skip()).SetLimit(int64(q.Limit))
	if sort := q.Sort(); len(sort) > 0 {
		findOptions.SetSort(sort)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list notices")
	}
	defer cursor.Close(ctx)

	notices := make([]models.Notice, 0, q.Limit)
	if err = cursor.All(ctx, &notices); err != nil {
		return nil, 0, errors.Wrap(err, "decode notices")
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count notices")
	}
	return notices, total, nil
}

// IncrementPopularity adds delta to the notice's popularity counter.
func (r *MongoNoticeRepository) IncrementPopularity(ctx context.Context, id primitive.ObjectID, delta int) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"popularity": delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return errors.Wrap(err, "update notice popularity")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DistinctLocations returns every location id referenced by at least one notice.
func (r *MongoNoticeRepository) DistinctLocations(ctx context.Context) ([]primitive.ObjectID, error) {
	values, err := r.collection.Distinct(ctx, "location", bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "distinct notice locations")
	}
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

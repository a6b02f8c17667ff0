package repositories

import (
	"context"
	"time"

	"github.com/petlove/backend/internal/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Pet, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MongoPetRepository struct {
	collection *mongo.Collection
}

func NewMongoPetRepository(db *mongo.Database) *MongoPetRepository {
	return &MongoPetRepository{collection: db.Collection(PetsCollection)}
}

func (r *MongoPetRepository) Create(ctx context.Context, pet *models.Pet) error {
	now := time.Now().UTC()
	pet.ID = primitive.NewObjectID()
	pet.CreatedAt = now
	pet.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, pet); err != nil {
		return errors.Wrap(err, "insert pet")
	}
	return nil
}

func (r *MongoPetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	var pet models.Pet
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find pet")
	}
	return &pet, nil
}

// FindByIDs loads pets in the order of ids, skipping dangling ids.
func (r *MongoPetRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Pet, error) {
	pets := make([]models.Pet, 0, len(ids))
	if len(ids) == 0 {
		return pets, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "find pets by id")
	}
	defer cursor.Close(ctx)

	var found []models.Pet
	if err = cursor.All(ctx, &found); err != nil {
		return nil, errors.Wrap(err, "decode pets")
	}
	byID := make(map[primitive.ObjectID]models.Pet, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			pets = append(pets, p)
		}
	}
	return pets, nil
}

func (r *MongoPetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete pet")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

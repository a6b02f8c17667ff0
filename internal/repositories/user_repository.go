package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/petlove/backend/internal/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetContact(ctx context.Context, id primitive.ObjectID) (*models.UserContact, error)
	EmailExistsForOther(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd UserUpdate) (*models.User, error)
	AddFavorite(ctx context.Context, userID, noticeID primitive.ObjectID) (*models.User, error)
	RemoveFavorite(ctx context.Context, userID, noticeID primitive.ObjectID) (*models.User, error)
	AddPet(ctx context.Context, userID, petID primitive.ObjectID) (*models.User, error)
	RemovePet(ctx context.Context, userID, petID primitive.ObjectID) (*models.User, error)
}

// UserUpdate holds the profile fields to change; nil fields are left alone.
type UserUpdate struct {
	Name   *string
	Email  *string
	Phone  *string
	Avatar *string
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(UsersCollection)}
}

// NormalizeEmail lowercases and trims an email the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create inserts a new user. Relation arrays start empty rather than null so
// that $addToSet/$pull always have an array to work on.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.Email = NormalizeEmail(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.NoticesFavorites == nil {
		user.NoticesFavorites = []primitive.ObjectID{}
	}
	if user.NoticesViewed == nil {
		user.NoticesViewed = []primitive.ObjectID{}
	}
	if user.Pets == nil {
		user.Pets = []primitive.ObjectID{}
	}

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return errors.Wrap(err, "insert user")
	}
	return nil
}

// GetByID retrieves a user by ID from MongoDB
func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByEmail looks up a user by normalized email.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": NormalizeEmail(email)})
}

// GetContact loads only the public contact fields of a user.
func (r *MongoUserRepository) GetContact(ctx context.Context, id primitive.ObjectID) (*models.UserContact, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1, "email": 1, "phone": 1})
	var contact models.UserContact
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find user contact")
	}
	return &contact, nil
}

// EmailExistsForOther checks if an email already exists for a user other than the given ID.
func (r *MongoUserRepository) EmailExistsForOther(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{
		"email": NormalizeEmail(email),
		"_id":   bson.M{"$ne": excludeID},
	}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, errors.Wrap(err, "check email")
}

// UpdateProfile sets the provided profile fields and returns the updated user.
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd UserUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = NormalizeEmail(*upd.Email)
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}
	user, err := r.updateAndReturn(ctx, id, bson.M{"$set": set})
	if err != nil && mongo.IsDuplicateKeyError(errors.Cause(err)) {
		return nil, ErrDuplicateEmail
	}
	return user, err
}

// AddFavorite adds noticeID to the user's favorites set.
func (r *MongoUserRepository) AddFavorite(ctx context.Context, userID, noticeID primitive.ObjectID) (*models.User, error) {
	return r.updateAndReturn(ctx, userID, bson.M{"$addToSet": bson.M{"noticesFavorites": noticeID}})
}

// RemoveFavorite removes noticeID from the user's favorites set.
func (r *MongoUserRepository) RemoveFavorite(ctx context.Context, userID, noticeID primitive.ObjectID) (*models.User, error) {
	return r.updateAndReturn(ctx, userID, bson.M{"$pull": bson.M{"noticesFavorites": noticeID}})
}

// AddPet appends petID to the user's pets.
func (r *MongoUserRepository) AddPet(ctx context.Context, userID, petID primitive.ObjectID) (*models.User, error) {
	return r.updateAndReturn(ctx, userID, bson.M{"$push": bson.M{"pets": petID}})
}

// RemovePet removes petID from the user's pets.
func (r *MongoUserRepository) RemovePet(ctx context.Context, userID, petID primitive.ObjectID) (*models.User, error) {
	return r.updateAndReturn(ctx, userID, bson.M{"$pull": bson.M{"pets": petID}})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (r *MongoUserRepository) updateAndReturn(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "update user")
	}
	return &user, nil
}

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account stored in the users collection. It owns its pets and
// its favorite/viewed notice relations.
type User struct {
	ID               primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name             string               `json:"name" bson:"name"`
	Email            string               `json:"email" bson:"email"` // unique, lowercase
	Password         string               `json:"-" bson:"password"`  // bcrypt hash
	Avatar           *string              `json:"avatar" bson:"avatar"`
	Phone            *string              `json:"phone" bson:"phone"`
	NoticesFavorites []primitive.ObjectID `json:"noticesFavorites" bson:"noticesFavorites"`
	NoticesViewed    []primitive.ObjectID `json:"noticesViewed" bson:"noticesViewed"`
	Pets             []primitive.ObjectID `json:"pets" bson:"pets"`
	CreatedAt        time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// HasFavorite reports whether noticeID is in the user's favorites set.
func (u *User) HasFavorite(noticeID primitive.ObjectID) bool {
	for _, id := range u.NoticesFavorites {
		if id == noticeID {
			return true
		}
	}
	return false
}

// OwnsPet reports whether the pet belongs to the user.
func (u *User) OwnsPet(p *Pet) bool {
	return p != nil && p.User == u.ID
}

// UserSummary is the short user shape returned by signup and signin.
type UserSummary struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	CreatedAt time.Time          `json:"createdAt"`
}

// UserContact is the author projection embedded in a notice detail.
type UserContact struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id"`
	Email string             `json:"email" bson:"email"`
	Phone *string            `json:"phone" bson:"phone"`
}

// UserProfile is returned by GET /users/current.
type UserProfile struct {
	ID               primitive.ObjectID `json:"_id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Token            string             `json:"token"`
	NoticesFavorites []Notice           `json:"noticesFavorites"`
}

// UserFullProfile is returned by every endpoint that hands back the whole
// account with its relations expanded.
type UserFullProfile struct {
	ID               primitive.ObjectID `json:"_id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Avatar           *string            `json:"avatar"`
	Phone            *string            `json:"phone"`
	Token            string             `json:"token"`
	NoticesViewed    []Notice           `json:"noticesViewed"`
	NoticesFavorites []Notice           `json:"noticesFavorites"`
	Pets             []Pet              `json:"pets"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,containsany=0123456789"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EditUserRequest only touches the fields that are present in the body.
type EditUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=50"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone" validate:"omitempty,phone"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

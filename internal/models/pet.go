package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pet is an animal profile owned by a single user.
type Pet struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Title     string             `json:"title" bson:"title"`
	ImgURL    string             `json:"imgURL" bson:"imgURL"`
	Species   PetSpecies         `json:"species" bson:"species"`
	Birthday  time.Time          `json:"birthday" bson:"birthday"`
	Sex       PetSex             `json:"sex" bson:"sex"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type AddPetRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Title    string `json:"title" validate:"required,max=100"`
	ImgURL   string `json:"imgURL" validate:"required,url"`
	Species  string `json:"species" validate:"required,pet_species"`
	Birthday string `json:"birthday" validate:"required"`
	Sex      string `json:"sex" validate:"required,pet_sex"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is a city reference record. It is seeded externally and never
// mutated by the API.
type Location struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UseCounty string             `json:"useCounty" bson:"useCounty"`
	StateEn   string             `json:"stateEn" bson:"stateEn"`
	CityEn    string             `json:"cityEn" bson:"cityEn"`
	CountyEn  string             `json:"countyEn,omitempty" bson:"countyEn,omitempty"`
	StateUa   string             `json:"stateUa,omitempty" bson:"stateUa,omitempty"`
	CityUa    string             `json:"cityUa,omitempty" bson:"cityUa,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// LocationRef is the expansion of a notice's location reference.
type LocationRef struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	StateEn string             `json:"stateEn" bson:"stateEn"`
	CityEn  string             `json:"cityEn" bson:"cityEn"`
}

// LocationSummary is the shape returned by the cities endpoints.
type LocationSummary struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	UseCounty string             `json:"useCounty" bson:"useCounty"`
	StateEn   string             `json:"stateEn" bson:"stateEn"`
	CityEn    string             `json:"cityEn" bson:"cityEn"`
	CountyEn  string             `json:"countyEn,omitempty" bson:"countyEn,omitempty"`
}

type CitySearchRequest struct {
	Keyword string `query:"keyword" validate:"required,min=3,max=48"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WorkDay is one entry of a partner's weekly schedule (always seven entries).
type WorkDay struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	IsOpen bool               `json:"isOpen" bson:"isOpen"`
	From   *string            `json:"from" bson:"from"`
	To     *string            `json:"to" bson:"to"`
}

// Friend is a partner organisation listed on the friends page.
type Friend struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	URL        string             `json:"url" bson:"url"`
	AddressURL string             `json:"addressUrl" bson:"addressUrl"`
	ImageURL   string             `json:"imageUrl" bson:"imageUrl"`
	Address    string             `json:"address" bson:"address"`
	WorkDays   []WorkDay          `json:"workDays" bson:"workDays"`
	Phone      *string            `json:"phone" bson:"phone"`
	Email      *string            `json:"email" bson:"email"`
}

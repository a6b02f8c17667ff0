package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// News is an article imported from an external feed. ExternalID is the
// feed's own identifier, Date is kept as the feed's string.
type News struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ImgURL     string             `json:"imgUrl" bson:"imgUrl"`
	Title      string             `json:"title" bson:"title"`
	Text       string             `json:"text" bson:"text"`
	Date       string             `json:"date" bson:"date"`
	URL        string             `json:"url" bson:"url"`
	ExternalID string             `json:"id" bson:"id"`
}

type NewsPage struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
	TotalPages int    `json:"totalPages"`
	Results    []News `json:"results"`
}

type ListNewsRequest struct {
	Keyword string `query:"keyword" validate:"max=100"`
	Page    int    `query:"page" validate:"min=1"`
	Limit   int    `query:"limit" validate:"min=1,max=100"`
}

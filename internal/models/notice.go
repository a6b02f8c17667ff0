package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice is a classified post stored in MongoDB.
//
// Popularity mirrors the number of users whose favorites contain the notice.
// It is maintained by the favorites endpoints with $inc, never recomputed.
type Notice struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Species    Species            `json:"species" bson:"species"`
	Category   NoticeCategory     `json:"category" bson:"category"`
	Price      float64            `json:"price" bson:"price"`
	Title      string             `json:"title" bson:"title"`
	Name       string             `json:"name" bson:"name"`
	Birthday   time.Time          `json:"birthday" bson:"birthday"`
	Comment    string             `json:"comment,omitempty" bson:"comment,omitempty"`
	Sex        NoticeSex          `json:"sex" bson:"sex"`
	Location   primitive.ObjectID `json:"location" bson:"location"`
	ImgURL     *string            `json:"imgURL" bson:"imgURL"`
	User       primitive.ObjectID `json:"user" bson:"user"`
	Popularity int                `json:"popularity" bson:"popularity"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NoticeSummary is a listing entry: the location is expanded, the author
// stays a raw id.
type NoticeSummary struct {
	Notice
	Location LocationRef `json:"location"`
}

// NoticeDetail is the single-notice shape with location and author expanded.
type NoticeDetail struct {
	Notice
	Location LocationRef `json:"location"`
	User     UserContact `json:"user"`
}

// NoticePage is the paginated listing envelope shared with news.
type NoticePage struct {
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalPages int             `json:"totalPages"`
	Results    []NoticeSummary `json:"results"`
}

// ListNoticesRequest is bound from the GET /notices query string.
// Sort toggles are kept as raw strings: only the literal "true"/"false"
// values switch them.
type ListNoticesRequest struct {
	Keyword      string `query:"keyword" validate:"max=100"`
	Category     string `query:"category" validate:"omitempty,notice_category"`
	Species      string `query:"species" validate:"omitempty,notice_species"`
	LocationID   string `query:"locationId" validate:"omitempty,objectid"`
	Sex          string `query:"sex" validate:"omitempty,notice_sex"`
	ByDate       string `query:"byDate"`
	ByPrice      string `query:"byPrice"`
	ByPopularity string `query:"byPopularity"`
	Page         int    `query:"page" validate:"min=1"`
	Limit        int    `query:"limit" validate:"min=1,max=100"`
}

// CreateNoticeRequest defines the request body for publishing a notice.
type CreateNoticeRequest struct {
	Species  string  `json:"species" validate:"required,notice_species"`
	Category string  `json:"category" validate:"required,notice_category"`
	Price    float64 `json:"price" validate:"min=0"`
	Title    string  `json:"title" validate:"required,max=100"`
	Name     string  `json:"name" validate:"required,max=50"`
	Birthday string  `json:"birthday" validate:"required"`
	Comment  string  `json:"comment" validate:"max=500"`
	Sex      string  `json:"sex" validate:"omitempty,notice_sex"`
	Location string  `json:"location" validate:"required,objectid"`
	ImgURL   string  `json:"imgURL" validate:"omitempty,url"`
}

package repositories

import (
	"regexp"

	"github.com/petlove/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceOrder is the tri-state price sort toggle.
type PriceOrder int

const (
	PriceUnsorted PriceOrder = iota
	PriceAscending
	PriceDescending
)

// NoticeQuery describes one page of the notice listing. Zero-valued filter
// fields impose no constraint.
type NoticeQuery struct {
	Keyword  string
	Category models.NoticeCategory
	Species  models.Species
	Location primitive.ObjectID
	Sex      models.NoticeSex

	ByDate       bool
	ByPrice      PriceOrder
	ByPopularity bool

	Page  int
	Limit int
}

// Filter composes the present predicates with AND. The keyword matches
// title, name or comment as a case-insensitive literal substring.
func (q NoticeQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Keyword != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Keyword), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"name": re},
			bson.M{"comment": re},
		}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Species != "" {
		filter["species"] = q.Species
	}
	if !q.Location.IsZero() {
		filter["location"] = q.Location
	}
	if q.Sex != "" {
		filter["sex"] = q.Sex
	}
	return filter
}

// Sort returns the enabled keys in the fixed order date, price, popularity.
// MongoDB treats the first key as primary, so later keys only break ties.
func (q NoticeQuery) Sort() bson.D {
	sort := bson.D{}
	if q.ByDate {
		sort = append(sort, bson.E{Key: "createdAt", Value: -1})
	}
	switch q.ByPrice {
	case PriceDescending:
		sort = append(sort, bson.E{Key: "price", Value: -1})
	case PriceAscending:
		sort = append(sort, bson.E{Key: "price", Value: 1})
	}
	if q.ByPopularity {
		sort = append(sort, bson.E{Key: "popularity", Value: -1})
	}
	return sort
}

// Skip is the number of matching documents before the requested page.
func (q NoticeQuery) Skip() int64 {
	if q.Page < 1 {
		return 0
	}
	return int64(q.Page-1) * int64(q.Limit)
}

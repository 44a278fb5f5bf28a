package entity

import (
	"slices"
	"strings"

	"marketplace/internal/errors"
)

// Relation names a related collection of a Service that can be expanded on
// read or removed on delete.
type Relation string

const (
	RelationHowDoesItWorks   Relation = "howDoesItWorks"
	RelationIncludes         Relation = "includes"
	RelationExcludes         Relation = "excludes"
	RelationFaqs             Relation = "faqs"
	RelationRatingAndReviews Relation = "ratingAndReviews"
	// RelationReviewers expands each review's user and profile. It implies
	// RelationRatingAndReviews.
	RelationReviewers Relation = "ratingAndReviews.user"
)

var knownRelations = []Relation{
	RelationHowDoesItWorks,
	RelationIncludes,
	RelationExcludes,
	RelationFaqs,
	RelationRatingAndReviews,
	RelationReviewers,
}

// IsValid checks if the relation is known.
func (r Relation) IsValid() bool {
	return slices.Contains(knownRelations, r)
}

// Expand is a declarative list of relations to load with a Service.
type Expand []Relation

var (
	// ExpandNone loads only the service row.
	ExpandNone = Expand{}

	// ExpandFull loads every child and each review's reviewer.
	ExpandFull = Expand{
		RelationHowDoesItWorks,
		RelationIncludes,
		RelationExcludes,
		RelationFaqs,
		RelationReviewers,
	}

	// ExpandListing loads every child and the bare reviews.
	ExpandListing = Expand{
		RelationHowDoesItWorks,
		RelationIncludes,
		RelationExcludes,
		RelationFaqs,
		RelationRatingAndReviews,
	}
)

// Has reports whether r is requested, directly or through a relation that implies it.
func (e Expand) Has(r Relation) bool {
	if slices.Contains(e, r) {
		return true
	}

	return r == RelationRatingAndReviews && slices.Contains(e, RelationReviewers)
}

// ParseRelations converts names (for example from config) into relations.
func ParseRelations(names []string) ([]Relation, error) {
	out := make([]Relation, 0, len(names))
	for _, name := range names {
		r := Relation(strings.TrimSpace(name))
		if r == "" {
			continue
		}
		if !r.IsValid() {
			return nil, errors.Errorf("unknown relation %q", name)
		}
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}

	return out, nil
}

// OwnedRelations are the collections deleted with their service by default.
// Reviews are not part of it.
var OwnedRelations = []Relation{
	RelationHowDoesItWorks,
	RelationIncludes,
	RelationExcludes,
	RelationFaqs,
}

// CascadeScope lists the relations removed when a service is deleted.
type CascadeScope []Relation

// NewCascadeScope validates the relations. RelationReviewers is not deletable
// on its own and is rejected.
func NewCascadeScope(rs []Relation) (CascadeScope, error) {
	for _, r := range rs {
		if r == RelationReviewers || !r.IsValid() {
			return nil, errors.Errorf("relation %q cannot be cascaded", r)
		}
	}

	return CascadeScope(slices.Clone(rs)), nil
}

// DefaultCascadeScope removes the four owned collections.
func DefaultCascadeScope() CascadeScope {
	return CascadeScope(slices.Clone(OwnedRelations))
}

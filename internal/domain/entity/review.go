package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RatingAndReview is a customer review left on a service.
type RatingAndReview struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	UserID    uuid.UUID `json:"userId"`
	Rating    float64   `json:"rating"`
	Review    string    `json:"review"`
	User      *Reviewer `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reviewer is the user who wrote a review, with the optional profile names.
type Reviewer struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	ProfileFirstName string    `json:"-"`
	ProfileLastName  string    `json:"-"`
	DisplayName      string    `json:"displayName"`
}

// ResolveDisplayName prefers the profile name and falls back to the account name.
func (r *Reviewer) ResolveDisplayName() string {
	if name := joinName(r.ProfileFirstName, r.ProfileLastName); name != "" {
		return name
	}

	return joinName(r.FirstName, r.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// ReviewPage is one window over a service's reviews.
type ReviewPage struct {
	Reviews []*RatingAndReview `json:"data"`
	Total   int                `json:"totalRatingAndReviews"`
	Page    int                `json:"page"`
	PerPage int                `json:"itemsPerPage"`
}

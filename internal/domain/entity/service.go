// Package entity contains the core business objects of the catalog.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceStatus is the publication state of a listing.
type ServiceStatus string

const (
	ServiceStatusDraft     ServiceStatus = "Draft"
	ServiceStatusPublished ServiceStatus = "Published"
)

// IsValid checks if the status is a known value.
func (s ServiceStatus) IsValid() bool {
	switch s {
	case ServiceStatusDraft, ServiceStatusPublished:
		return true
	default:
		return false
	}
}

// PriceStatus tells whether a listing carries a price.
type PriceStatus string

const (
	PriceStatusPriced   PriceStatus = "priced"
	PriceStatusUnpriced PriceStatus = "unpriced"
)

// IsValid checks if the price status is a known value.
func (p PriceStatus) IsValid() bool {
	switch p {
	case PriceStatusPriced, PriceStatusUnpriced:
		return true
	default:
		return false
	}
}

// Service is a marketplace listing. Children are only populated when the
// corresponding relation was expanded.
type Service struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"serviceName"`
	Description      string             `json:"serviceDescription"`
	TimeToComplete   string             `json:"timeToComplete"`
	Price            float64            `json:"price"`
	Warranty         string             `json:"warranty"`
	Status           ServiceStatus      `json:"status"`
	PriceStatus      PriceStatus        `json:"priceStatus"`
	Thumbnail        string             `json:"thumbnail"`
	MetaTitle        string             `json:"metaTitle"`
	MetaDescription  string             `json:"metaDescription"`
	CategoryID       uuid.UUID          `json:"categoryId"`
	SubCategoryID    uuid.UUID          `json:"subCategoryId"`
	HowDoesItWorks   []*HowDoesItWork   `json:"howDoesItWorks,omitempty"`
	Includes         []*Include         `json:"includes,omitempty"`
	Excludes         []*Exclude         `json:"excludes,omitempty"`
	Faqs             []*Faq             `json:"faqs,omitempty"`
	RatingAndReviews []*RatingAndReview `json:"ratingAndReviews,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// IsUnpriced reports whether the listing has no price set.
func (s *Service) IsUnpriced() bool {
	return s.Price == 0
}

// ServiceFilter narrows a listing query. Zero values do not filter.
type ServiceFilter struct {
	Status    ServiceStatus
	ZeroPrice bool
}

// ServiceUpdate is a field-level partial update. Only set fields are applied.
type ServiceUpdate struct {
	Name            Optional[string]
	Description     Optional[string]
	TimeToComplete  Optional[string]
	Price           Optional[float64]
	Warranty        Optional[string]
	Status          Optional[ServiceStatus]
	PriceStatus     Optional[PriceStatus]
	Thumbnail       Optional[string]
	MetaTitle       Optional[string]
	MetaDescription Optional[string]
}

// IsEmpty reports whether no field is set.
func (u *ServiceUpdate) IsEmpty() bool {
	return !u.Name.IsSet() &&
		!u.Description.IsSet() &&
		!u.TimeToComplete.IsSet() &&
		!u.Price.IsSet() &&
		!u.Warranty.IsSet() &&
		!u.Status.IsSet() &&
		!u.PriceStatus.IsSet() &&
		!u.Thumbnail.IsSet() &&
		!u.MetaTitle.IsSet() &&
		!u.MetaDescription.IsSet()
}

// ApplyTo copies every set field onto s.
func (u *ServiceUpdate) ApplyTo(s *Service) {
	if v, ok := u.Name.Get(); ok {
		s.Name = v
	}
	if v, ok := u.Description.Get(); ok {
		s.Description = v
	}
	if v, ok := u.TimeToComplete.Get(); ok {
		s.TimeToComplete = v
	}
	if v, ok := u.Price.Get(); ok {
		s.Price = v
	}
	if v, ok := u.Warranty.Get(); ok {
		s.Warranty = v
	}
	if v, ok := u.Status.Get(); ok {
		s.Status = v
	}
	if v, ok := u.PriceStatus.Get(); ok {
		s.PriceStatus = v
	}
	if v, ok := u.Thumbnail.Get(); ok {
		s.Thumbnail = v
	}
	if v, ok := u.MetaTitle.Get(); ok {
		s.MetaTitle = v
	}
	if v, ok := u.MetaDescription.Get(); ok {
		s.MetaDescription = v
	}
}

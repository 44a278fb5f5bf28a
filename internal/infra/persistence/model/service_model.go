package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel mirrors the 'services' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ServiceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Name            string    `gorm:"column:service_name;type:varchar(255);not null"`
	Description     string    `gorm:"column:service_description;type:text;not null"`
	TimeToComplete  string    `gorm:"type:varchar(100)"`
	Price           float64   `gorm:"type:decimal(12,2);not null;default:0;index"`
	Warranty        string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(16);not null;default:'Draft';index"`
	PriceStatus     string    `gorm:"type:varchar(16);not null;default:'priced'"`
	Thumbnail       string    `gorm:"type:text;not null"`
	MetaTitle       string    `gorm:"type:varchar(255)"`
	MetaDescription string    `gorm:"type:text"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SubCategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Children carry no database constraint; deletion follows the configured cascade.
	SubCategory      *SubCategoryModel       `gorm:"foreignKey:SubCategoryID"`
	HowDoesItWorks   []*HowDoesItWorkModel   `gorm:"foreignKey:ServiceID;constraint:-"`
	Includes         []*IncludeModel         `gorm:"foreignKey:ServiceID;constraint:-"`
	Excludes         []*ExcludeModel         `gorm:"foreignKey:ServiceID;constraint:-"`
	Faqs             []*FaqModel             `gorm:"foreignKey:ServiceID;constraint:-"`
	RatingAndReviews []*RatingAndReviewModel `gorm:"foreignKey:ServiceID;constraint:-"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// HowDoesItWorkModel mirrors the 'how_does_it_works' table.
type HowDoesItWorkModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Position    int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (HowDoesItWorkModel) TableName() string {
	return "how_does_it_works"
}

// IncludeModel mirrors the 'includes' table.
type IncludeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:text;not null"`
	Position  int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (IncludeModel) TableName() string {
	return "includes"
}

// ExcludeModel mirrors the 'excludes' table.
type ExcludeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:text;not null"`
	Position  int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ExcludeModel) TableName() string {
	return "excludes"
}

// FaqModel mirrors the 'faqs' table.
type FaqModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	Position  int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (FaqModel) TableName() string {
	return "faqs"
}

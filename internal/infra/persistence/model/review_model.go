package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingAndReviewModel mirrors the 'rating_and_reviews' table.
type RatingAndReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    float64   `gorm:"type:decimal(3,2);not null"`
	Review    string    `gorm:"type:text"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingAndReviewModel) TableName() string {
	return "rating_and_reviews"
}

// UserModel mirrors the subset of the 'users' table the catalog reads.
type UserModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	FirstName string     `gorm:"type:varchar(100)"`
	LastName  string     `gorm:"type:varchar(100)"`
	ProfileID *uuid.UUID `gorm:"type:uuid"`

	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the subset of the 'profiles' table the catalog reads.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

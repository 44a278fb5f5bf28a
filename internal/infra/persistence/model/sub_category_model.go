package model

import (
	"time"

	"github.com/google/uuid"
)

// SubCategoryModel mirrors the 'sub_categories' table.
type SubCategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Name       string    `gorm:"type:varchar(255);not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubCategoryModel) TableName() string {
	return "sub_categories"
}

// SubCategoryServiceModel mirrors the 'sub_category_services' table, the
// ordered reverse list from a sub-category to its services.
type SubCategoryServiceModel struct {
	SubCategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position      int       `gorm:"not null"`

	SubCategory *SubCategoryModel `gorm:"foreignKey:SubCategoryID"`
	Service     *ServiceModel     `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SubCategoryServiceModel) TableName() string {
	return "sub_category_services"
}

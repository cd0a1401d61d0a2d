package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table. Optional columns are pointers so
// an untouched form field is stored as NULL, never as an empty string or zero.
type ListingModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code              string    `gorm:"type:varchar(40);unique;not null"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Kind              *string   `gorm:"type:varchar(50)"`
	Status            string    `gorm:"type:varchar(20);not null;default:'available'"`
	City              *string   `gorm:"type:varchar(100)"`
	District          *string   `gorm:"type:varchar(100)"`
	Address           *string   `gorm:"type:varchar(255)"`
	Price             *float64  `gorm:"type:numeric(14,2)"`
	SalePrice         *float64  `gorm:"type:numeric(14,2)"`
	CommissionPercent *float64  `gorm:"type:numeric(5,2)"`
	AreaTotal         *float64  `gorm:"type:numeric(10,2)"`
	AreaBuilt         *float64  `gorm:"type:numeric(10,2)"`
	Rooms             *int
	Bathrooms         *int
	Parking           *int
	Description       *string    `gorm:"type:text"`
	InternalNotes     *string    `gorm:"type:text"`
	OwnerID           *uuid.UUID `gorm:"type:uuid"`
	ListerID          *uuid.UUID `gorm:"type:uuid"`
	CreatedBy         uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt         time.Time  `gorm:"index:idx_listings_created_at,sort:desc"`
	UpdatedAt         time.Time

	Owner  *OwnerModel `gorm:"foreignKey:OwnerID"`
	Lister *UserModel  `gorm:"foreignKey:ListerID"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

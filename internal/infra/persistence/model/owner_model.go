package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnerModel mirrors the 'owners' table. Owners are the proprietários a
// listing can reference; they are contacts, not login accounts.
type OwnerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(40)"`
	Document  string    `gorm:"type:varchar(40)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OwnerModel) TableName() string {
	return "owners"
}

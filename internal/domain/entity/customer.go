package entity

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a customer of the tailoring shop
type Customer struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Notes     *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Measurements []Measurement `gorm:"foreignKey:CustomerID" json:"measurements,omitempty"`
	Orders       []Order       `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

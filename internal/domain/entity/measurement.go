package entity

import (
	"time"

	"gorm.io/gorm"
)

// Measurement holds one set of body measurements for a customer. A customer
// can keep several labeled sets (e.g. "summer thobe", "winter thobe").
// Values are centimetres.
type Measurement struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint           `gorm:"not null;index" json:"customer_id"`
	Label      *string        `gorm:"size:100" json:"label,omitempty"`
	Height     *float64       `json:"height,omitempty"`
	Shoulder   *float64       `json:"shoulder,omitempty"`
	Chest      *float64       `json:"chest,omitempty"`
	Waist      *float64       `json:"waist,omitempty"`
	Sleeve     *float64       `json:"sleeve,omitempty"`
	Wrist      *float64       `json:"wrist,omitempty"`
	Neck       *float64       `json:"neck,omitempty"`
	Hip        *float64       `json:"hip,omitempty"`
	Notes      *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Measurement model
func (Measurement) TableName() string {
	return "measurements"
}

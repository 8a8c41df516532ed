package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a tailoring order. The id is a storage-assigned
// sequential integer; the invoice code is derived from it.
//
// The three amounts are computed once at creation (VAT = 15% of the
// pre-tax price, rounded to 2 decimal places; total = price + VAT) and
// never recomputed afterwards.
type Order struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID     uint            `gorm:"not null;index" json:"customer_id"`
	MeasurementID  *uint           `gorm:"index" json:"measurement_id,omitempty"`
	FabricType     *string         `gorm:"size:255" json:"fabric_type,omitempty"`
	PriceBeforeVat decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_before_vat"`
	VatAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"vat_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	DeliveryDate   *time.Time      `json:"delivery_date,omitempty"`
	Notes          *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Customer    *Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Measurement *Measurement `gorm:"foreignKey:MeasurementID" json:"measurement,omitempty"`
	Invoice     *Invoice     `gorm:"foreignKey:OrderID" json:"invoice,omitempty"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

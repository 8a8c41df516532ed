package entity

import (
	"time"

	"github.com/fahadalg/tailor-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice is the internal tax invoice created alongside its order, one per
// order. Subtotal, VAT and total are copies of the order's amounts taken at
// creation time; IssueDate is the authoritative timestamp for the QR payload.
type Invoice struct {
	ID           uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      uint             `gorm:"not null;uniqueIndex" json:"order_id"`
	InternalCode string           `gorm:"size:50;uniqueIndex;not null" json:"internal_code"`
	IssueDate    time.Time        `gorm:"not null" json:"issue_date"`
	Subtotal     decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	VatAmount    decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"vat_amount"`
	TotalAmount  decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	InvoiceType  enum.InvoiceType `gorm:"size:30;not null;default:'SIMPLIFIED'" json:"invoice_type"`
	VatCategory  enum.VatCategory `gorm:"size:30;not null;default:'STANDARD'" json:"vat_category"`
	Currency     string           `gorm:"size:3;not null;default:'SAR'" json:"currency"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Order    Order     `gorm:"foreignKey:OrderID" json:"-"`
	EInvoice *EInvoice `gorm:"foreignKey:InvoiceID" json:"einvoice,omitempty"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

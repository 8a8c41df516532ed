package entity

import (
	"time"

	"github.com/fahadalg/tailor-api/internal/domain/enum"
)

// EInvoice is the locally issued compliance record for an invoice. The
// unique index on InvoiceID is the idempotency boundary: at most one
// e-invoice exists per invoice, and re-issuance refreshes the QR payload
// in place while UUID keeps its first-assigned value.
type EInvoice struct {
	ID              uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID       uint                `gorm:"not null;uniqueIndex" json:"invoice_id"`
	UUID            string              `gorm:"size:64;not null" json:"uuid"`
	QRData          string              `gorm:"type:text;not null" json:"qr_data"`
	ProviderStatus  enum.ProviderStatus `gorm:"size:30;not null" json:"provider_status"`
	ProviderRawResp *string             `gorm:"type:text" json:"provider_raw_resp,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// TableName returns the table name for the EInvoice model
func (EInvoice) TableName() string {
	return "einvoices"
}

package enum

// InvoiceType classifies an invoice under the e-invoicing regulation.
// The shop only issues simplified (B2C) tax invoices.
type InvoiceType string

const (
	InvoiceTypeSimplified InvoiceType = "SIMPLIFIED"
)

// VatCategory is the VAT treatment applied to an invoice.
type VatCategory string

const (
	VatCategoryStandard VatCategory = "STANDARD"
)

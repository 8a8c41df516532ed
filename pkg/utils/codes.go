package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// FormatInvoiceCode derives the human-readable invoice code from an order's
// numeric identifier: "INV-" plus the id zero-padded to 6 digits. Wider ids
// keep all their digits (no truncation), so order 1000000 yields
// "INV-1000000". Uniqueness follows from the storage layer assigning order
// ids sequentially.
func FormatInvoiceCode(orderID uint) string {
	return fmt.Sprintf("INV-%06d", orderID)
}

// Package pricing derives VAT and total amounts from a pre-tax price.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// VATRate is the fixed VAT rate applied to every order (15%).
var VATRate = decimal.NewFromFloat(0.15)

// ErrInvalidAmount is returned when the pre-tax price is zero or negative.
var ErrInvalidAmount = errors.New("pricing: price before VAT must be positive")

// Compute returns the VAT and total for the given pre-tax price.
//
// The VAT amount is rounded to 2 fractional digits, half away from zero
// (0.005 rounds up to 0.01). The total is price + VAT, also carried at
// 2 fractional digits.
func Compute(priceBeforeVat decimal.Decimal) (vat, total decimal.Decimal, err error) {
	if priceBeforeVat.Sign() <= 0 {
		return decimal.Zero, decimal.Zero, ErrInvalidAmount
	}

	vat = priceBeforeVat.Mul(VATRate).Round(2)
	total = priceBeforeVat.Add(vat).Round(2)
	return vat, total, nil
}

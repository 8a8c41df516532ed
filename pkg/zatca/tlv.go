// Package zatca builds the simplified tax invoice QR payload: five TLV
// (tag-length-value) fields concatenated and Base64-encoded, the shape
// expected by Saudi compliance-code scanners. No cryptographic signing
// is involved; the payload is issued locally.
package zatca

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TLV tags, fixed by the simplified invoice QR layout.
const (
	TagSellerName = 1
	TagVATNumber  = 2
	TagTimestamp  = 3
	TagTotal      = 4
	TagVAT        = 5
)

// maxValueLen is the largest value one TLV length byte can describe.
const maxValueLen = 255

// timestampLayout matches the issue-date rendering embedded in the QR
// payload: ISO-8601, UTC, millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// ErrFieldTooLong is returned when a field's UTF-8 encoding exceeds 255
// bytes. The length prefix is a single byte, so longer values are rejected
// outright rather than truncated or allowed to wrap the byte layout.
type ErrFieldTooLong struct {
	Tag int
	Len int
}

func (e *ErrFieldTooLong) Error() string {
	return fmt.Sprintf("zatca: tag %d value is %d bytes, exceeds TLV limit of %d", e.Tag, e.Len, maxValueLen)
}

// SimplifiedInvoice carries the five fields encoded into the QR payload.
type SimplifiedInvoice struct {
	SellerName string
	VATNumber  string
	IssuedAt   time.Time
	Total      decimal.Decimal
	VAT        decimal.Decimal
}

// EncodeQR serializes the invoice into the five-field TLV buffer and
// returns it Base64-encoded (standard alphabet, padded).
//
// Fields are written in tag order 1..5. Empty seller name or VAT number
// is encoded as a zero-length unit: the tag and a length byte of 0 are
// still emitted, never omitted. Amounts are formatted with exactly two
// fractional digits. Same input always yields the same output.
func EncodeQR(inv SimplifiedInvoice) (string, error) {
	var buf bytes.Buffer

	fields := []struct {
		tag   int
		value string
	}{
		{TagSellerName, inv.SellerName},
		{TagVATNumber, inv.VATNumber},
		{TagTimestamp, inv.IssuedAt.UTC().Format(timestampLayout)},
		{TagTotal, inv.Total.StringFixed(2)},
		{TagVAT, inv.VAT.StringFixed(2)},
	}

	for _, f := range fields {
		if err := writeTLV(&buf, f.tag, f.value); err != nil {
			return "", err
		}
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeTLV(buf *bytes.Buffer, tag int, value string) error {
	n := len(value) // UTF-8 byte length, not rune count
	if n > maxValueLen {
		return &ErrFieldTooLong{Tag: tag, Len: n}
	}
	buf.WriteByte(byte(tag))
	buf.WriteByte(byte(n))
	buf.WriteString(value)
	return nil
}

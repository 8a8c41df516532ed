package entity

import "time"

// ShopSettingsID is the fixed primary key of the single settings row.
const ShopSettingsID uint = 1

// ShopSettings is the seller profile printed on invoices and encoded into
// the compliance QR. The table holds at most one row (id = 1); when it is
// absent, DefaultShopSettings supplies the profile.
type ShopSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CRNumber  *string   `gorm:"size:50;column:cr_number" json:"cr_number,omitempty"`
	VATNumber *string   `gorm:"size:50;column:vat_number" json:"vat_number,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	Phone     *string   `gorm:"size:50" json:"phone,omitempty"`
	City      *string   `gorm:"size:100" json:"city,omitempty"`
	Country   *string   `gorm:"size:100" json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the ShopSettings model
func (ShopSettings) TableName() string {
	return "shop_settings"
}

// DefaultShopSettings returns the fallback profile used when no settings
// row has been configured. A fresh value each call; callers may mutate
// their copy freely.
func DefaultShopSettings() ShopSettings {
	cr := "1234567890"
	vat := "300000000000003"
	address := "أبها - المملكة العربية السعودية"
	phone := "0500000000"
	city := "أبها"
	country := "Saudi Arabia"
	return ShopSettings{
		ID:        ShopSettingsID,
		Name:      "محل خياطة تجريبي",
		CRNumber:  &cr,
		VATNumber: &vat,
		Address:   &address,
		Phone:     &phone,
		City:      &city,
		Country:   &country,
	}
}

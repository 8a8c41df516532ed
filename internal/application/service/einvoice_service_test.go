package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/internal/domain/enum"
	"github.com/fahadalg/tailor-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func createTestOrder(t *testing.T, svcs *testRepos, customerID uint, price string) *entity.Order {
	t.Helper()
	order, err := svcs.order.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:     customerID,
		PriceBeforeVat: decimal.RequireFromString(price),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

// decodeQRFields unpacks the Base64 TLV payload into tag->value pairs
func decodeQRFields(t *testing.T, qrData string) map[byte]string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(qrData)
	if err != nil {
		t.Fatalf("qr payload is not valid base64: %v", err)
	}

	fields := make(map[byte]string)
	for i := 0; i < len(raw); {
		if i+2 > len(raw) {
			t.Fatalf("truncated TLV header at offset %d", i)
		}
		tag, length := raw[i], int(raw[i+1])
		if i+2+length > len(raw) {
			t.Fatalf("tag %d declares %d bytes past end of payload", tag, length)
		}
		fields[tag] = string(raw[i+2 : i+2+length])
		i += 2 + length
	}
	return fields
}

func TestIssueCreatesEInvoice(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "محمد الشهري")
	order := createTestOrder(t, svcs, customer.ID, "200")

	result, err := svcs.einvoice.Issue(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if result.EInvoice.UUID == "" {
		t.Error("e-invoice has no uuid")
	}
	if result.EInvoice.ProviderStatus != enum.ProviderStatusLocalIssued {
		t.Errorf("status = %q, want %q", result.EInvoice.ProviderStatus, enum.ProviderStatusLocalIssued)
	}
	if result.Order.ID != order.ID || result.Order.CustomerName != customer.Name {
		t.Errorf("order summary = %+v", result.Order)
	}
	if result.Shop.Name == "" {
		t.Error("shop summary missing name")
	}

	fields := decodeQRFields(t, result.EInvoice.QRData)
	if len(fields) != 5 {
		t.Fatalf("decoded %d TLV fields, want 5", len(fields))
	}
	if fields[4] != "230.00" {
		t.Errorf("total field = %q, want 230.00", fields[4])
	}
	if fields[5] != "30.00" {
		t.Errorf("vat field = %q, want 30.00", fields[5])
	}
	if !strings.HasSuffix(fields[3], "Z") {
		t.Errorf("timestamp %q is not UTC-rendered", fields[3])
	}
}

func TestIssueQRUsesConfiguredShop(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "تركي")
	order := createTestOrder(t, svcs, customer.ID, "115")

	vat := "311111111111113"
	_, err := svcs.settings.UpdateShopSettings(context.Background(), &UpdateShopSettingsInput{
		Name:      "خياط المدينة",
		VATNumber: &vat,
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}

	result, err := svcs.einvoice.Issue(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	fields := decodeQRFields(t, result.EInvoice.QRData)
	if fields[1] != "خياط المدينة" {
		t.Errorf("seller field = %q", fields[1])
	}
	if fields[2] != vat {
		t.Errorf("vat number field = %q, want %q", fields[2], vat)
	}
}

func TestIssueIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "بندر")
	order := createTestOrder(t, svcs, customer.ID, "350")

	first, err := svcs.einvoice.Issue(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("first issue: %v", err)
	}
	second, err := svcs.einvoice.Issue(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("second issue: %v", err)
	}

	if second.EInvoice.UUID != first.EInvoice.UUID {
		t.Errorf("uuid changed on re-issue: %q then %q", first.EInvoice.UUID, second.EInvoice.UUID)
	}
	if second.EInvoice.QRData != first.EInvoice.QRData {
		t.Error("qr payload changed on re-issue of an unchanged invoice")
	}

	var count int64
	db.Model(&entity.EInvoice{}).Where("invoice_id = ?", order.Invoice.ID).Count(&count)
	if count != 1 {
		t.Errorf("einvoice rows = %d, want 1", count)
	}
}

func TestIssueConcurrentSameOrder(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "راشد")
	order := createTestOrder(t, svcs, customer.ID, "500")

	const workers = 8
	uuids := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := svcs.einvoice.Issue(context.Background(), order.ID)
			if err != nil {
				errs[i] = err
				return
			}
			uuids[i] = result.EInvoice.UUID
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d: %v", i, err)
		}
	}
	for i := 1; i < workers; i++ {
		if uuids[i] != uuids[0] {
			t.Fatalf("workers observed different uuids: %q and %q", uuids[0], uuids[i])
		}
	}

	var count int64
	db.Model(&entity.EInvoice{}).Where("invoice_id = ?", order.Invoice.ID).Count(&count)
	if count != 1 {
		t.Errorf("einvoice rows = %d, want 1", count)
	}
}

func TestIssueOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)

	_, err := svcs.einvoice.Issue(context.Background(), 4242)
	if !errors.Is(err, apperror.ErrOrderNotFound) {
		t.Fatalf("got %v, want ErrOrderNotFound", err)
	}

	var count int64
	db.Model(&entity.EInvoice{}).Count(&count)
	if count != 0 {
		t.Errorf("einvoice rows = %d after failed issue, want 0", count)
	}
}

func TestIssueOrderWithoutInvoice(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "صالح")

	// a bare order row, bypassing the create path that attaches the invoice
	bare := &entity.Order{
		CustomerID:     customer.ID,
		PriceBeforeVat: decimal.NewFromInt(100),
		VatAmount:      decimal.NewFromInt(15),
		TotalAmount:    decimal.NewFromInt(115),
	}
	if err := db.Create(bare).Error; err != nil {
		t.Fatalf("insert bare order: %v", err)
	}

	_, err := svcs.einvoice.Issue(context.Background(), bare.ID)
	if !errors.Is(err, apperror.ErrNoInvoiceForOrder) {
		t.Fatalf("got %v, want ErrNoInvoiceForOrder", err)
	}
}

func TestIssueOrderWithoutCustomer(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)

	// order referencing a customer id that does not exist
	orphan := &entity.Order{
		CustomerID:     999,
		PriceBeforeVat: decimal.NewFromInt(100),
		VatAmount:      decimal.NewFromInt(15),
		TotalAmount:    decimal.NewFromInt(115),
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(orphan).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Invoice{
			OrderID:      orphan.ID,
			InternalCode: "INV-000999",
			Subtotal:     orphan.PriceBeforeVat,
			VatAmount:    orphan.VatAmount,
			TotalAmount:  orphan.TotalAmount,
		}).Error
	})
	if err != nil {
		t.Fatalf("insert orphan order: %v", err)
	}

	_, err = svcs.einvoice.Issue(context.Background(), orphan.ID)
	if !errors.Is(err, apperror.ErrNoCustomerForOrder) {
		t.Fatalf("got %v, want ErrNoCustomerForOrder", err)
	}
}

func TestIssueOversizeShopNameRejected(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "وليد")
	order := createTestOrder(t, svcs, customer.ID, "100")

	// 150 two-byte runes is 300 UTF-8 bytes, past the one-byte TLV length
	_, err := svcs.settings.UpdateShopSettings(context.Background(), &UpdateShopSettingsInput{
		Name: strings.Repeat("ش", 150),
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}

	_, err = svcs.einvoice.Issue(context.Background(), order.ID)
	if !errors.Is(err, apperror.ErrEncodingOverflow) {
		t.Fatalf("got %v, want ErrEncodingOverflow", err)
	}

	var count int64
	db.Model(&entity.EInvoice{}).Count(&count)
	if count != 0 {
		t.Errorf("einvoice rows = %d after rejected encoding, want 0", count)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/pkg/apperror"
	"github.com/fahadalg/tailor-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

func TestCreateOrderComputesAmounts(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "خالد العمري")

	order, err := svcs.order.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:     customer.ID,
		PriceBeforeVat: decimal.NewFromInt(200),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if !order.VatAmount.Equal(decimal.RequireFromString("30")) {
		t.Errorf("vat = %s, want 30", order.VatAmount)
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("230")) {
		t.Errorf("total = %s, want 230", order.TotalAmount)
	}
	if order.Invoice == nil {
		t.Fatal("order created without invoice")
	}

	wantCode := fmt.Sprintf("INV-%06d", order.ID)
	if order.Invoice.InternalCode != wantCode {
		t.Errorf("invoice code = %q, want %q", order.Invoice.InternalCode, wantCode)
	}
	if order.Invoice.IssueDate.IsZero() {
		t.Error("invoice issue date not set")
	}
	if !order.Invoice.Subtotal.Equal(order.PriceBeforeVat) ||
		!order.Invoice.VatAmount.Equal(order.VatAmount) ||
		!order.Invoice.TotalAmount.Equal(order.TotalAmount) {
		t.Errorf("invoice amounts %s/%s/%s do not mirror order amounts %s/%s/%s",
			order.Invoice.Subtotal, order.Invoice.VatAmount, order.Invoice.TotalAmount,
			order.PriceBeforeVat, order.VatAmount, order.TotalAmount)
	}
}

func TestCreateOrderRoundsVatHalfAwayFromZero(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "سعيد")

	// 0.30 * 0.15 = 0.045, which rounds up to 0.05
	order, err := svcs.order.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:     customer.ID,
		PriceBeforeVat: decimal.RequireFromString("0.30"),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if !order.VatAmount.Equal(decimal.RequireFromString("0.05")) {
		t.Errorf("vat = %s, want 0.05", order.VatAmount)
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("0.35")) {
		t.Errorf("total = %s, want 0.35", order.TotalAmount)
	}
}

func TestCreateOrderRejectsNonPositivePrice(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "فهد")

	for _, price := range []string{"0", "-10"} {
		_, err := svcs.order.CreateOrder(context.Background(), &CreateOrderInput{
			CustomerID:     customer.ID,
			PriceBeforeVat: decimal.RequireFromString(price),
		})
		if !errors.Is(err, apperror.ErrInvalidAmount) {
			t.Errorf("price %s: got %v, want ErrInvalidAmount", price, err)
		}
	}

	// a rejected price must leave no partial rows behind
	var orders, invoices int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.Invoice{}).Count(&invoices)
	if orders != 0 || invoices != 0 {
		t.Errorf("persisted %d orders and %d invoices after rejected creates", orders, invoices)
	}
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)

	_, err := svcs.order.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:     999,
		PriceBeforeVat: decimal.NewFromInt(100),
	})
	if err == nil {
		t.Fatal("expected error for unknown customer")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", appErr.Code)
	}
}

func TestCreateOrderUnknownMeasurement(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "ماجد")

	missing := uint(42)
	_, err := svcs.order.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:     customer.ID,
		MeasurementID:  &missing,
		PriceBeforeVat: decimal.NewFromInt(100),
	})
	if err == nil {
		t.Fatal("expected error for unknown measurement")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", appErr.Code)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)

	_, err := svcs.order.GetOrder(context.Background(), 12345)
	if !errors.Is(err, apperror.ErrOrderNotFound) {
		t.Fatalf("got %v, want ErrOrderNotFound", err)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "عبدالله")

	for i := 0; i < 3; i++ {
		_, err := svcs.order.CreateOrder(context.Background(), &CreateOrderInput{
			CustomerID:     customer.ID,
			PriceBeforeVat: decimal.NewFromInt(int64(100 + i)),
		})
		if err != nil {
			t.Fatalf("create order %d: %v", i, err)
		}
	}

	result, err := svcs.order.ListOrders(context.Background(), pagination.DefaultPagination())
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if result.Pagination.Total != 3 {
		t.Fatalf("total = %d, want 3", result.Pagination.Total)
	}
	for i := 1; i < len(result.Items); i++ {
		if result.Items[i-1].ID < result.Items[i].ID {
			t.Fatalf("orders not sorted newest first: %d before %d", result.Items[i-1].ID, result.Items[i].ID)
		}
	}
}

func TestBuildPrintData(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "ناصر القحطاني")

	height := 172.0
	measurement, err := svcs.measurement.CreateMeasurement(context.Background(), &CreateMeasurementInput{
		CustomerID: customer.ID,
		Height:     &height,
	})
	if err != nil {
		t.Fatalf("create measurement: %v", err)
	}

	fabric := "قماش شتوي"
	order, err := svcs.order.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:     customer.ID,
		MeasurementID:  &measurement.ID,
		FabricType:     &fabric,
		PriceBeforeVat: decimal.NewFromInt(400),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	data, err := svcs.order.BuildPrintData(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("build print data: %v", err)
	}

	ci := data.CustomerInvoice
	if ci.Shop.Name == "" {
		t.Error("shop name missing from customer invoice")
	}
	if ci.Invoice.InternalCode != order.Invoice.InternalCode {
		t.Errorf("invoice code = %q, want %q", ci.Invoice.InternalCode, order.Invoice.InternalCode)
	}
	if ci.Customer.Name != customer.Name {
		t.Errorf("customer name = %q, want %q", ci.Customer.Name, customer.Name)
	}
	if len(ci.Items) != 1 || ci.Items[0].Description != fabric {
		t.Errorf("items = %+v, want one line describing %q", ci.Items, fabric)
	}
	if !ci.Totals.TotalAmount.Equal(decimal.RequireFromString("460")) {
		t.Errorf("total = %s, want 460", ci.Totals.TotalAmount)
	}

	slip := data.TailorSlip
	if slip.OrderID != order.ID || slip.InvoiceCode != order.Invoice.InternalCode {
		t.Errorf("slip references order %d code %q", slip.OrderID, slip.InvoiceCode)
	}
	if slip.Measurements == nil || slip.Measurements.Height == nil || *slip.Measurements.Height != height {
		t.Error("slip measurements missing or wrong")
	}
}

func TestBuildPrintDataUsesDefaultDescription(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)
	customer := createTestCustomer(t, svcs.customer, "علي")

	order, err := svcs.order.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:     customer.ID,
		PriceBeforeVat: decimal.NewFromInt(150),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	data, err := svcs.order.BuildPrintData(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("build print data: %v", err)
	}
	if got := data.CustomerInvoice.Items[0].Description; got != defaultItemDescription {
		t.Errorf("description = %q, want %q", got, defaultItemDescription)
	}
}

func TestBuildPrintDataOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)

	_, err := svcs.order.BuildPrintData(context.Background(), 77)
	if !errors.Is(err, apperror.ErrOrderNotFound) {
		t.Fatalf("got %v, want ErrOrderNotFound", err)
	}
}

package service

import (
	"context"
	"testing"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/internal/infrastructure/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a private in-memory database for one test. The single
// connection keeps the database alive and serializes concurrent access,
// which sqlite needs for the racing-issuance tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Measurement{},
		&entity.Order{},
		&entity.Invoice{},
		&entity.EInvoice{},
		&entity.ShopSettings{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

type testRepos struct {
	customer    *CustomerService
	measurement *MeasurementService
	order       *OrderService
	einvoice    *EInvoiceService
	settings    *SettingsService
}

// newTestServices wires the full service stack over a fresh database
func newTestServices(t *testing.T, db *gorm.DB) *testRepos {
	t.Helper()
	customerRepo := repository.NewCustomerRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	einvoiceRepo := repository.NewEInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	return &testRepos{
		customer:    NewCustomerService(customerRepo),
		measurement: NewMeasurementService(measurementRepo, customerRepo),
		order:       NewOrderService(orderRepo, customerRepo, measurementRepo, settingsRepo),
		einvoice:    NewEInvoiceService(orderRepo, einvoiceRepo, settingsRepo),
		settings:    NewSettingsService(settingsRepo),
	}
}

func createTestCustomer(t *testing.T, svc *CustomerService, name string) *entity.Customer {
	t.Helper()
	phone := "0551234567"
	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:  name,
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}

package service

import (
	"context"
	"testing"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
)

func TestGetShopSettingsFallsBackToDefaults(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)

	settings, err := svcs.settings.GetShopSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}

	defaults := entity.DefaultShopSettings()
	if settings.Name != defaults.Name {
		t.Errorf("name = %q, want default %q", settings.Name, defaults.Name)
	}
	if settings.VATNumber == nil || *settings.VATNumber != *defaults.VATNumber {
		t.Error("default vat number missing")
	}

	// the fallback must not write a row
	var count int64
	db.Model(&entity.ShopSettings{}).Count(&count)
	if count != 0 {
		t.Errorf("settings rows = %d after fallback read, want 0", count)
	}
}

func TestUpdateShopSettingsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)

	cr := "7001234567"
	city := "الرياض"
	saved, err := svcs.settings.UpdateShopSettings(context.Background(), &UpdateShopSettingsInput{
		Name:     "مشغل الأناقة",
		CRNumber: &cr,
		City:     &city,
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if saved.ID != entity.ShopSettingsID {
		t.Errorf("settings id = %d, want %d", saved.ID, entity.ShopSettingsID)
	}

	got, err := svcs.settings.GetShopSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if got.Name != "مشغل الأناقة" {
		t.Errorf("name = %q", got.Name)
	}
	if got.CRNumber == nil || *got.CRNumber != cr {
		t.Error("cr number not persisted")
	}
	if got.City == nil || *got.City != city {
		t.Error("city not persisted")
	}
}

func TestUpdateShopSettingsOverwritesSingleRow(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)

	for _, name := range []string{"الأول", "الثاني", "الثالث"} {
		if _, err := svcs.settings.UpdateShopSettings(context.Background(), &UpdateShopSettingsInput{Name: name}); err != nil {
			t.Fatalf("update to %q: %v", name, err)
		}
	}

	var count int64
	db.Model(&entity.ShopSettings{}).Count(&count)
	if count != 1 {
		t.Errorf("settings rows = %d, want 1", count)
	}

	got, err := svcs.settings.GetShopSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if got.Name != "الثالث" {
		t.Errorf("name = %q, want last written value", got.Name)
	}
}

func TestUpdateShopSettingsRequiresName(t *testing.T) {
	db := setupTestDB(t)
	svcs := newTestServices(t, db)

	if _, err := svcs.settings.UpdateShopSettings(context.Background(), &UpdateShopSettingsInput{}); err == nil {
		t.Fatal("expected error for empty shop name")
	}
}

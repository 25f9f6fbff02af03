package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/communica-av/quoter-backend/pkg/db/models"
	"github.com/communica-av/quoter-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// The production schema lives in SQL migrations; mirror the shape here
	// without the Postgres-only defaults.
	if err := db.Exec(`CREATE TABLE items (
		id TEXT PRIMARY KEY,
		item_key TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		label TEXT NOT NULL,
		emoji TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL,
		quantity_mode TEXT NOT NULL DEFAULT 'unit',
		base_price NUMERIC NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func seedEntry(t *testing.T, db *gorm.DB, key string, active bool, sortOrder int) {
	t.Helper()
	entry := models.CatalogEntry{
		ID:           uuid.New(),
		ItemKey:      key,
		Category:     "Audio",
		Label:        key,
		Unit:         "evento",
		QuantityMode: enums.QuantityModeUnit,
		BasePrice:    decimal.NewFromInt(100),
		IsActive:     active,
		SortOrder:    sortOrder,
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
}

func TestListActiveFiltersAndOrders(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seedEntry(t, db, "THIRD", true, 30)
	seedEntry(t, db, "FIRST", true, 10)
	seedEntry(t, db, "HIDDEN", false, 20)
	seedEntry(t, db, "SECOND", true, 20)

	repo := NewRepository(db)
	rows, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}

	want := []string{"FIRST", "SECOND", "THIRD"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, key := range want {
		if rows[i].ItemKey != key {
			t.Fatalf("row %d: expected %s, got %s", i, key, rows[i].ItemKey)
		}
	}
}

func TestListActiveEmptyTable(t *testing.T) {
	t.Parallel()

	repo := NewRepository(openTestDB(t))
	rows, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"emlakweb_backend/internal/model"

	"github.com/stretchr/testify/mock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:repo_test_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.Listing{},
		&model.BlogPost{},
		&model.AdminUser{},
		&model.Session{},
		&model.ViewTracking{},
		&model.PageView{},
	); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

// mockRemover dosya silme çağrılarını kaydeder
type mockRemover struct {
	mock.Mock
}

func (m *mockRemover) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// fakeClock testlerde ileri sarılabilen saat
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
}

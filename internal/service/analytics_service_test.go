package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/inarasite/internal/db"
	"github.com/inarasite/internal/kv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAnalyticsStore(t *testing.T) (*kv.Store, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:analytics-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.KVEntry{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return kv.NewStore(gdb), func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSiteVisitCountsEveryCall(t *testing.T) {
	store, cleanup := setupAnalyticsStore(t)
	defer cleanup()

	svc := NewAnalyticsService(store)
	for want := int64(1); want <= 3; want++ {
		got, err := svc.RecordSiteVisit()
		if err != nil {
			t.Fatalf("RecordSiteVisit returned error: %v", err)
		}
		if got != want {
			t.Fatalf("expected count %d, got %d", want, got)
		}
	}

	total, err := svc.SiteVisits()
	if err != nil {
		t.Fatalf("SiteVisits returned error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
}

func TestResetSiteVisits(t *testing.T) {
	store, cleanup := setupAnalyticsStore(t)
	defer cleanup()

	svc := NewAnalyticsService(store)
	if _, err := svc.RecordSiteVisit(); err != nil {
		t.Fatalf("RecordSiteVisit returned error: %v", err)
	}
	if err := svc.ResetSiteVisits(); err != nil {
		t.Fatalf("ResetSiteVisits returned error: %v", err)
	}

	total, err := svc.SiteVisits()
	if err != nil {
		t.Fatalf("SiteVisits returned error: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 after reset, got %d", total)
	}
}

func TestPostViewsAreKeyedBySlug(t *testing.T) {
	store, cleanup := setupAnalyticsStore(t)
	defer cleanup()

	svc := NewAnalyticsService(store)
	if _, err := svc.RecordPostView("startup-lessons"); err != nil {
		t.Fatalf("RecordPostView returned error: %v", err)
	}
	if _, err := svc.RecordPostView("startup-lessons"); err != nil {
		t.Fatalf("RecordPostView returned error: %v", err)
	}
	if _, err := svc.RecordPostView("funding-guide"); err != nil {
		t.Fatalf("RecordPostView returned error: %v", err)
	}

	views, err := svc.PostViews("startup-lessons")
	if err != nil {
		t.Fatalf("PostViews returned error: %v", err)
	}
	if views != 2 {
		t.Fatalf("expected 2 views, got %d", views)
	}

	other, _ := svc.PostViews("funding-guide")
	if other != 1 {
		t.Fatalf("expected 1 view, got %d", other)
	}

	// Counters never leak into the site-wide total.
	site, _ := svc.SiteVisits()
	if site != 0 {
		t.Fatalf("expected site total untouched, got %d", site)
	}
}

func TestGarbageCounterValueTreatedAsZero(t *testing.T) {
	store, cleanup := setupAnalyticsStore(t)
	defer cleanup()

	if err := store.Set(SiteViewsKey, "not-a-number"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	svc := NewAnalyticsService(store)
	got, err := svc.RecordSiteVisit()
	if err != nil {
		t.Fatalf("RecordSiteVisit returned error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected counter restart at 1, got %d", got)
	}
}

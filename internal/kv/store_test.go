package kv

import (
	"fmt"
	"testing"
	"time"

	"github.com/inarasite/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupStoreTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:kv-store-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.KVEntry{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestGetReportsAbsentKey(t *testing.T) {
	gdb, cleanup := setupStoreTestDB(t)
	defer cleanup()

	store := NewStore(gdb)
	value, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Fatal("expected missing key to report absent")
	}
	if value != "" {
		t.Fatalf("expected empty value, got %q", value)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	gdb, cleanup := setupStoreTestDB(t)
	defer cleanup()

	store := NewStore(gdb)
	if err := store.Set("greeting", "hello"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, ok, err := store.Get("greeting")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok || value != "hello" {
		t.Fatalf("expected (hello, true), got (%q, %v)", value, ok)
	}

	// Overwrite keeps a single row per key.
	if err := store.Set("greeting", "hi again"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	value, _, _ = store.Get("greeting")
	if value != "hi again" {
		t.Fatalf("expected overwritten value, got %q", value)
	}

	var count int64
	if err := gdb.Model(&db.KVEntry{}).Where("key = ?", "greeting").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row for key, got %d", count)
	}
}

func TestRemoveDeletesKey(t *testing.T) {
	gdb, cleanup := setupStoreTestDB(t)
	defer cleanup()

	store := NewStore(gdb)
	if err := store.Set("transient", "x"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Remove("transient"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	_, ok, err := store.Get("transient")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Fatal("expected key to be gone after Remove")
	}
}

func TestNotificationSkipsWriter(t *testing.T) {
	gdb, cleanup := setupStoreTestDB(t)
	defer cleanup()

	store := NewStore(gdb)

	var tabAKeys, tabBKeys []string
	_, cancelA := store.Subscribe("tab-a", func(key string) { tabAKeys = append(tabAKeys, key) })
	defer cancelA()
	_, cancelB := store.Subscribe("tab-b", func(key string) { tabBKeys = append(tabBKeys, key) })
	defer cancelB()

	if err := store.SetAs("tab-a", "shared", "1"); err != nil {
		t.Fatalf("SetAs returned error: %v", err)
	}

	if len(tabAKeys) != 0 {
		t.Fatalf("writer must not be notified, got %v", tabAKeys)
	}
	if len(tabBKeys) != 1 || tabBKeys[0] != "shared" {
		t.Fatalf("expected tab-b to see [shared], got %v", tabBKeys)
	}

	if err := store.RemoveAs("tab-b", "shared"); err != nil {
		t.Fatalf("RemoveAs returned error: %v", err)
	}
	if len(tabAKeys) != 1 || tabAKeys[0] != "shared" {
		t.Fatalf("expected tab-a to see the removal, got %v", tabAKeys)
	}
	if len(tabBKeys) != 1 {
		t.Fatalf("tab-b must not hear its own removal, got %v", tabBKeys)
	}
}

func TestAnonymousWriteNotifiesEveryone(t *testing.T) {
	gdb, cleanup := setupStoreTestDB(t)
	defer cleanup()

	store := NewStore(gdb)

	notified := 0
	_, cancel := store.Subscribe("", func(string) { notified++ })
	defer cancel()

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if notified != 1 {
		t.Fatalf("expected 1 notification, got %d", notified)
	}
}

func TestCancelledSubscriberStopsReceiving(t *testing.T) {
	gdb, cleanup := setupStoreTestDB(t)
	defer cleanup()

	store := NewStore(gdb)

	notified := 0
	_, cancel := store.Subscribe("page", func(string) { notified++ })
	cancel()

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if notified != 0 {
		t.Fatalf("cancelled subscriber still notified %d times", notified)
	}
}

// Package kv implements the site's persistence substrate: a synchronous,
// string-keyed, string-valued store with change notifications delivered to
// every subscribed context except the writer itself.
package kv

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/inarasite/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPersistenceUnavailable indicates the backing store rejected a write.
// Callers must surface it; writes are never silently dropped.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// Store provides keyed access to the kv_entries table.
type Store struct {
	db *gorm.DB

	mu          sync.Mutex
	subscribers map[string]func(key string)
}

// NewStore creates a Store backed by the given gorm instance.
func NewStore(gdb *gorm.DB) *Store {
	return &Store{
		db:          gdb,
		subscribers: make(map[string]func(key string)),
	}
}

// Get returns the value for key. The second result reports whether the key
// exists; absence is not an error.
func (s *Store) Get(key string) (string, bool, error) {
	var entry db.KVEntry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set stores value under key with no writer identity; every subscriber is
// notified.
func (s *Store) Set(key, value string) error {
	return s.SetAs("", key, value)
}

// SetAs stores value under key on behalf of the named writer. All subscribers
// except the writer receive a change notification after the write commits.
func (s *Store) SetAs(writer, key, value string) error {
	entry := db.KVEntry{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrPersistenceUnavailable, key, err)
	}

	s.notify(writer, key)
	return nil
}

// Remove deletes key with no writer identity.
func (s *Store) Remove(key string) error {
	return s.RemoveAs("", key)
}

// RemoveAs deletes key on behalf of the named writer. Removing an absent key
// is a no-op at this layer; higher layers decide whether that is an error.
func (s *Store) RemoveAs(writer, key string) error {
	if err := s.db.Where("key = ?", key).Delete(&db.KVEntry{}).Error; err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrPersistenceUnavailable, key, err)
	}

	s.notify(writer, key)
	return nil
}

// Subscribe registers fn to run with the changed key whenever another context
// writes to the store. An empty name is replaced with a generated identity.
// The returned cancel function removes the subscription.
func (s *Store) Subscribe(name string, fn func(key string)) (string, func()) {
	if name == "" {
		name = uuid.NewString()
	}

	s.mu.Lock()
	s.subscribers[name] = fn
	s.mu.Unlock()

	return name, func() {
		s.mu.Lock()
		delete(s.subscribers, name)
		s.mu.Unlock()
	}
}

// notify fans the changed key out to every subscriber except the writer.
// Delivery is synchronous and best effort; there is no ordering or retry
// guarantee across contexts.
func (s *Store) notify(writer, key string) {
	s.mu.Lock()
	callbacks := make([]func(string), 0, len(s.subscribers))
	for name, fn := range s.subscribers {
		if name == writer {
			continue
		}
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(key)
	}
}

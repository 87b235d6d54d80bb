// Package snapshot persists the latest JSON snapshot of each collection
// to a local SQLite file. It is the fallback when the spreadsheet webhook
// is unreachable: a best-effort cache of the most recent state, not a
// queue of pending changes.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Slot names, one per collection.
const (
	SlotOrders        = "orders"
	SlotStaffBook     = "staff_book"
	SlotEntryStatuses = "entry_status"
)

type Snapshot struct {
	Name      string `gorm:"primaryKey"`
	Data      string
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save overwrites the named slot with the JSON encoding of v.
func (s *Store) Save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", name, err)
	}

	snap := Snapshot{Name: name, Data: string(data), UpdatedAt: time.Now()}
	if err := s.db.Save(&snap).Error; err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}
	return nil
}

// Load decodes the named slot into v. Returns gorm.ErrRecordNotFound when
// the slot has never been written.
func (s *Store) Load(name string, v any) error {
	var snap Snapshot
	if err := s.db.First(&snap, "name = ?", name).Error; err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(snap.Data), v); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}
	return nil
}

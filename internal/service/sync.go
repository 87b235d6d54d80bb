package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"rajmahal-backend/internal/metrics"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/sheets"
	"rajmahal-backend/internal/snapshot"
	"rajmahal-backend/internal/store"
)

// ErrSyncNotConfigured means no webhook URL was set.
var ErrSyncNotConfigured = errors.New("spreadsheet sync is not configured")

// Sync mirrors the full contents of all collections to the spreadsheet
// webhook. When the webhook is unreachable it degrades to writing the
// snapshot to local storage; the failure is logged and surfaced once to
// the caller, never retried automatically.
type Sync struct {
	store     store.Store
	client    *sheets.Client
	snapshots *snapshot.Store

	mu          sync.Mutex
	lastChecked time.Time
}

// NewSync accepts a nil snapshot store; the local fallback is then
// skipped entirely.
func NewSync(s store.Store, client *sheets.Client, snapshots *snapshot.Store) *Sync {
	return &Sync{store: s, client: client, snapshots: snapshots}
}

func (s *Sync) SyncAll() (*sheets.SyncResult, error) {
	if s.client == nil || !s.client.Configured() {
		return nil, ErrSyncNotConfigured
	}

	s.mu.Lock()
	s.lastChecked = time.Now()
	s.mu.Unlock()

	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	staffBook, err := s.store.ListStaffBook()
	if err != nil {
		return nil, fmt.Errorf("failed to list staff book: %w", err)
	}
	entryStatuses, err := s.store.ListEntryStatuses()
	if err != nil {
		return nil, fmt.Errorf("failed to list entry statuses: %w", err)
	}

	result, err := s.client.Push(sheets.SyncPayload{
		Orders:        orders,
		StaffBook:     staffBook,
		EntryStatuses: entryStatuses,
	})
	if err != nil {
		metrics.SyncAttempts.WithLabelValues("failure").Inc()
		log.Printf("Sheet sync failed, keeping local snapshot: %v", err)
		s.saveLocalSnapshot(orders, staffBook, entryStatuses)
		return nil, fmt.Errorf("failed to sync to spreadsheet: %w", err)
	}

	metrics.SyncAttempts.WithLabelValues("success").Inc()
	return result, nil
}

func (s *Sync) Status() models.SyncStatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SyncStatusResponse{
		Configured:  s.client != nil && s.client.Configured(),
		LastChecked: s.lastChecked,
	}
}

func (s *Sync) saveLocalSnapshot(orders []models.Order, staffBook []models.StaffBookEntry, entryStatuses []models.EntryStatus) {
	if s.snapshots == nil {
		return
	}
	slots := []struct {
		name string
		data any
	}{
		{snapshot.SlotOrders, orders},
		{snapshot.SlotStaffBook, staffBook},
		{snapshot.SlotEntryStatuses, entryStatuses},
	}
	for _, slot := range slots {
		if err := s.snapshots.Save(slot.name, slot.data); err != nil {
			log.Printf("Failed to save local snapshot %s: %v", slot.name, err)
		}
	}
}

package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"rajmahal-backend/internal/models"
)

// MemoryStore keeps all collections in process memory. Slices rather than
// maps so that listing order is insertion order. Everything is lost on
// restart unless mirrored through the sync gateway.
type MemoryStore struct {
	mu            sync.RWMutex
	orders        []models.Order
	staffBook     []models.StaffBookEntry
	entryStatuses []models.EntryStatus
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStore) GetOrderBySno(sno string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.orders {
		if s.orders[i].Sno == sno {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateOrder(order models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Replace semantics: an existing order with the same sno is removed
	// first, history is not kept.
	for i := range s.orders {
		if s.orders[i].Sno == order.Sno {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}

	order.ID = uuid.New().String()
	order.CreatedAt = time.Now()
	s.orders = append(s.orders, order)
	return &order, nil
}

func (s *MemoryStore) UpdateOrder(sno string, update models.OrderUpdate) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].Sno == sno {
			mergeOrder(&s.orders[i], update)
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteOrder(sno string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].Sno == sno {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) ListStaffBook() ([]models.StaffBookEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StaffBookEntry, len(s.staffBook))
	copy(out, s.staffBook)
	return out, nil
}

func (s *MemoryStore) CreateStaffBookEntry(entry models.StaffBookEntry) (*models.StaffBookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()
	s.staffBook = append(s.staffBook, entry)
	return &entry, nil
}

func (s *MemoryStore) DeleteStaffBookEntry(billbookRange string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staffBook {
		if s.staffBook[i].BillbookRange == billbookRange {
			s.staffBook = append(s.staffBook[:i], s.staffBook[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) ListEntryStatuses() ([]models.EntryStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.EntryStatus, len(s.entryStatuses))
	copy(out, s.entryStatuses)
	return out, nil
}

func (s *MemoryStore) ListEntryStatusesBySno(sno string) ([]models.EntryStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.EntryStatus
	for _, es := range s.entryStatuses {
		if es.Sno == sno {
			out = append(out, es)
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateEntryStatus(entry models.EntryStatus) (*models.EntryStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()
	s.entryStatuses = append(s.entryStatuses, entry)
	return &entry, nil
}

func (s *MemoryStore) DeleteEntryStatus(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entryStatuses {
		if s.entryStatuses[i].ID == id {
			s.entryStatuses = append(s.entryStatuses[:i], s.entryStatuses[i+1:]...)
			return nil
		}
	}
	return nil
}

func mergeOrder(order *models.Order, update models.OrderUpdate) {
	if update.Sno != nil {
		order.Sno = *update.Sno
	}
	if update.Product != nil {
		order.Product = *update.Product
	}
	if update.Additional != nil {
		order.Additional = *update.Additional
	}
	if update.OrderDate != nil {
		order.OrderDate = *update.OrderDate
	}
	if update.DeliveryDate != nil {
		order.DeliveryDate = *update.DeliveryDate
	}
	if update.Telephone != nil {
		order.Telephone = *update.Telephone
	}
	if update.ImageLink != nil {
		order.ImageLink = *update.ImageLink
	}
	if update.DeliveryStatus != nil {
		order.DeliveryStatus = *update.DeliveryStatus
	}
	if update.StaffName != nil {
		order.StaffName = *update.StaffName
	}
}

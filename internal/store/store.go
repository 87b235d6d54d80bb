package store

import (
	"errors"

	"rajmahal-backend/internal/models"
)

// ErrNotFound is returned when a lookup or update targets a record that
// does not exist. Deletes are a no-op instead.
var ErrNotFound = errors.New("record not found")

// Store holds the three collections. Implementations must preserve
// insertion order when listing: staff assignment resolution and entry
// status listings depend on it.
type Store interface {
	ListOrders() ([]models.Order, error)
	GetOrderBySno(sno string) (*models.Order, error)
	// CreateOrder assigns a fresh id and creation timestamp. If an order
	// with the same sno already exists it is replaced, not duplicated.
	CreateOrder(order models.Order) (*models.Order, error)
	// UpdateOrder shallow-merges the set fields of update over the order
	// with the given sno and returns the merged record. Changing sno to a
	// serial already held by another order is implementation-defined: the
	// memory store allows the duplicate, postgres rejects it with a
	// unique-constraint error.
	UpdateOrder(sno string, update models.OrderUpdate) (*models.Order, error)
	DeleteOrder(sno string) error

	ListStaffBook() ([]models.StaffBookEntry, error)
	CreateStaffBookEntry(entry models.StaffBookEntry) (*models.StaffBookEntry, error)
	DeleteStaffBookEntry(billbookRange string) error

	ListEntryStatuses() ([]models.EntryStatus, error)
	ListEntryStatusesBySno(sno string) ([]models.EntryStatus, error)
	CreateEntryStatus(entry models.EntryStatus) (*models.EntryStatus, error)
	DeleteEntryStatus(id string) error
}

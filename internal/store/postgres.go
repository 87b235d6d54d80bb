package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"rajmahal-backend/internal/models"
)

// PostgresStore implements Store on PostgreSQL with the same contract as
// MemoryStore. The seq column preserves insertion order across listings.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

const orderColumns = "id, sno, product, additional, o_date, d_date, telephone, link, delivery_status, staff_name, created_at"

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID, &order.Sno, &order.Product, &order.Additional,
		&order.OrderDate, &order.DeliveryDate, &order.Telephone,
		&order.ImageLink, &order.DeliveryStatus, &order.StaffName,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *PostgresStore) ListOrders() ([]models.Order, error) {
	rows, err := s.db.Query("SELECT " + orderColumns + " FROM orders ORDER BY seq ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (s *PostgresStore) GetOrderBySno(sno string) (*models.Order, error) {
	order, err := scanOrder(s.db.QueryRow(
		"SELECT "+orderColumns+" FROM orders WHERE sno = $1", sno))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *PostgresStore) CreateOrder(order models.Order) (*models.Order, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace semantics on duplicate sno.
	if _, err := tx.Exec("DELETE FROM orders WHERE sno = $1", order.Sno); err != nil {
		return nil, fmt.Errorf("failed to replace order: %w", err)
	}

	order.ID = uuid.New().String()
	order.CreatedAt = time.Now()
	_, err = tx.Exec(`
		INSERT INTO orders (id, sno, product, additional, o_date, d_date, telephone, link, delivery_status, staff_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, order.ID, order.Sno, order.Product, order.Additional, order.OrderDate,
		order.DeliveryDate, order.Telephone, order.ImageLink, order.DeliveryStatus,
		order.StaffName, order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}
	return &order, nil
}

func (s *PostgresStore) UpdateOrder(sno string, update models.OrderUpdate) (*models.Order, error) {
	order, err := scanOrder(s.db.QueryRow(`
		UPDATE orders SET
			sno = COALESCE($2, sno),
			product = COALESCE($3, product),
			additional = COALESCE($4, additional),
			o_date = COALESCE($5, o_date),
			d_date = COALESCE($6, d_date),
			telephone = COALESCE($7, telephone),
			link = COALESCE($8, link),
			delivery_status = COALESCE($9, delivery_status),
			staff_name = COALESCE($10, staff_name)
		WHERE sno = $1
		RETURNING `+orderColumns,
		sno, update.Sno, update.Product, update.Additional, update.OrderDate,
		update.DeliveryDate, update.Telephone, update.ImageLink,
		update.DeliveryStatus, update.StaffName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

func (s *PostgresStore) DeleteOrder(sno string) error {
	if _, err := s.db.Exec("DELETE FROM orders WHERE sno = $1", sno); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListStaffBook() ([]models.StaffBookEntry, error) {
	rows, err := s.db.Query("SELECT id, billbook_range, staff_name, created_at FROM staff_book ORDER BY seq ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list staff book: %w", err)
	}
	defer rows.Close()

	var entries []models.StaffBookEntry
	for rows.Next() {
		var entry models.StaffBookEntry
		if err := rows.Scan(&entry.ID, &entry.BillbookRange, &entry.StaffName, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff book entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) CreateStaffBookEntry(entry models.StaffBookEntry) (*models.StaffBookEntry, error) {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()
	_, err := s.db.Exec(`
		INSERT INTO staff_book (id, billbook_range, staff_name, created_at)
		VALUES ($1, $2, $3, $4)
	`, entry.ID, entry.BillbookRange, entry.StaffName, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff book entry: %w", err)
	}
	return &entry, nil
}

func (s *PostgresStore) DeleteStaffBookEntry(billbookRange string) error {
	if _, err := s.db.Exec("DELETE FROM staff_book WHERE billbook_range = $1", billbookRange); err != nil {
		return fmt.Errorf("failed to delete staff book entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListEntryStatuses() ([]models.EntryStatus, error) {
	return s.queryEntryStatuses("SELECT id, sno, product, package, created_at FROM entry_status ORDER BY seq ASC")
}

func (s *PostgresStore) ListEntryStatusesBySno(sno string) ([]models.EntryStatus, error) {
	return s.queryEntryStatuses("SELECT id, sno, product, package, created_at FROM entry_status WHERE sno = $1 ORDER BY seq ASC", sno)
}

func (s *PostgresStore) queryEntryStatuses(query string, args ...any) ([]models.EntryStatus, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry statuses: %w", err)
	}
	defer rows.Close()

	var entries []models.EntryStatus
	for rows.Next() {
		var entry models.EntryStatus
		if err := rows.Scan(&entry.ID, &entry.Sno, &entry.Product, &entry.Package, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry status: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) CreateEntryStatus(entry models.EntryStatus) (*models.EntryStatus, error) {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()
	_, err := s.db.Exec(`
		INSERT INTO entry_status (id, sno, product, package, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.ID, entry.Sno, entry.Product, entry.Package, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry status: %w", err)
	}
	return &entry, nil
}

func (s *PostgresStore) DeleteEntryStatus(id string) error {
	if _, err := s.db.Exec("DELETE FROM entry_status WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete entry status: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

package service

import (
	"fmt"
	"strings"
	"unicode"

	"rajmahal-backend/internal/assignment"
	"rajmahal-backend/internal/metrics"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/store"
)

// Orders validates order input and drives staff auto-assignment before
// delegating persistence to the store.
type Orders struct {
	store store.Store
}

func NewOrders(s store.Store) *Orders {
	return &Orders{store: s}
}

func (o *Orders) List() ([]models.Order, error) {
	return o.store.ListOrders()
}

func (o *Orders) Get(sno string) (*models.Order, error) {
	return o.store.GetOrderBySno(sno)
}

// Create validates the request, assigns staff by billbook range and
// persists the order. An existing order with the same sno is replaced.
// Staff assignment happens only here: later staff book edits never touch
// already-assigned orders.
func (o *Orders) Create(req models.CreateOrderRequest) (*models.Order, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	status := req.DeliveryStatus
	if status == "" {
		status = models.DeliveryStatusPending
	}

	book, err := o.store.ListStaffBook()
	if err != nil {
		return nil, fmt.Errorf("failed to load staff book: %w", err)
	}

	order, err := o.store.CreateOrder(models.Order{
		Sno:            req.Sno,
		Product:        req.Product,
		Additional:     req.Additional,
		OrderDate:      req.OrderDate,
		DeliveryDate:   req.DeliveryDate,
		Telephone:      req.Telephone,
		ImageLink:      req.ImageLink,
		DeliveryStatus: status,
		StaffName:      assignment.ResolveStaff(req.Sno, book),
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	return order, nil
}

// Update shallow-merges the set fields over the stored order. Delivery
// status transitions are unconstrained: any status may follow any other.
func (o *Orders) Update(sno string, update models.OrderUpdate) (*models.Order, error) {
	return o.store.UpdateOrder(sno, update)
}

// Delete removes the order. Entry statuses recorded against the sno are
// left in place and stay queryable.
func (o *Orders) Delete(sno string) error {
	return o.store.DeleteOrder(sno)
}

func validateCreateOrder(req models.CreateOrderRequest) error {
	required := []struct {
		name, value string
	}{
		{"sno", req.Sno},
		{"product", req.Product},
		{"oDate", req.OrderDate},
		{"dDate", req.DeliveryDate},
		{"tel", req.Telephone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return validationErrorf(f.name + " is required")
		}
	}

	for _, r := range req.Sno {
		if !unicode.IsDigit(r) {
			return validationErrorf("sno must contain only digits")
		}
	}
	return nil
}

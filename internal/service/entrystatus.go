package service

import (
	"errors"
	"fmt"
	"strings"

	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/store"
)

// EntryStatuses records per-garment packaging completion. The product
// field usually holds one of the garments the shop makes (sherwani,
// indo-western, jodhpuri, coat-pant) but is not constrained. A record may
// only be added for an order that already exists; after that the records
// live on independently (no cascade on order deletion).
type EntryStatuses struct {
	store store.Store
}

func NewEntryStatuses(s store.Store) *EntryStatuses {
	return &EntryStatuses{store: s}
}

func (es *EntryStatuses) List() ([]models.EntryStatus, error) {
	return es.store.ListEntryStatuses()
}

func (es *EntryStatuses) ListBySno(sno string) ([]models.EntryStatus, error) {
	return es.store.ListEntryStatusesBySno(sno)
}

// Add appends a new record. Duplicates for the same (sno, product) are
// allowed and accumulate — one record per garment in a multi-piece order.
func (es *EntryStatuses) Add(req models.CreateEntryStatusRequest) (*models.EntryStatus, error) {
	if strings.TrimSpace(req.Sno) == "" {
		return nil, validationErrorf("sno is required")
	}
	if strings.TrimSpace(req.Product) == "" {
		return nil, validationErrorf("product is required")
	}

	if _, err := es.store.GetOrderBySno(req.Sno); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("order with sno %s not found, add the order first: %w", req.Sno, store.ErrNotFound)
		}
		return nil, err
	}

	return es.store.CreateEntryStatus(models.EntryStatus{
		Sno:     req.Sno,
		Product: req.Product,
		Package: req.Package,
	})
}

func (es *EntryStatuses) Delete(id string) error {
	return es.store.DeleteEntryStatus(id)
}

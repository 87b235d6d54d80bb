package service

import (
	"regexp"
	"strings"

	"rajmahal-backend/internal/assignment"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/store"
)

var billbookRangePattern = regexp.MustCompile(`^\d+-\d+$`)

// StaffBook manages billbook range assignments. Overlapping ranges are
// accepted; resolution picks the first match in storage order.
type StaffBook struct {
	store store.Store
}

func NewStaffBook(s store.Store) *StaffBook {
	return &StaffBook{store: s}
}

func (sb *StaffBook) List() ([]models.StaffBookEntry, error) {
	return sb.store.ListStaffBook()
}

func (sb *StaffBook) Create(req models.CreateStaffBookRequest) (*models.StaffBookEntry, error) {
	if strings.TrimSpace(req.StaffName) == "" {
		return nil, validationErrorf("staffName is required")
	}
	if !billbookRangePattern.MatchString(req.BillbookRange) {
		return nil, validationErrorf("billbookRange must match start-end, e.g. 301-350")
	}
	if _, _, ok := assignment.ParseRange(req.BillbookRange); !ok {
		return nil, validationErrorf("billbookRange start must not exceed end")
	}

	return sb.store.CreateStaffBookEntry(models.StaffBookEntry{
		BillbookRange: req.BillbookRange,
		StaffName:     req.StaffName,
	})
}

func (sb *StaffBook) Delete(billbookRange string) error {
	return sb.store.DeleteStaffBookEntry(billbookRange)
}

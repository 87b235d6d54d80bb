// Package assignment maps order serial numbers to staff members through
// billbook ranges ("301-350" means serials 301 through 350 inclusive).
package assignment

import (
	"strconv"
	"strings"

	"rajmahal-backend/internal/models"
)

// ResolveStaff returns the staff name of the first entry whose range
// contains the serial number, in the order the entries are given. When
// ranges overlap the earlier entry wins; overlap is not validated
// anywhere, so which entry is "earlier" is whatever order the store
// returns. Returns "" when nothing matches, the serial number is not
// numeric, or a range is malformed (malformed ranges are skipped).
func ResolveStaff(sno string, book []models.StaffBookEntry) string {
	serial, err := strconv.Atoi(sno)
	if err != nil {
		return ""
	}

	for _, entry := range book {
		start, end, ok := ParseRange(entry.BillbookRange)
		if !ok {
			continue
		}
		if serial >= start && serial <= end {
			return entry.StaffName
		}
	}
	return ""
}

// ParseRange splits a "start-end" billbook range into its bounds.
// ok is false when either bound is not an integer or start > end.
func ParseRange(billbookRange string) (start, end int, ok bool) {
	parts := strings.SplitN(billbookRange, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if start > end {
		return 0, 0, false
	}
	return start, end, true
}

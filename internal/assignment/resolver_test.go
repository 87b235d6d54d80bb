package assignment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"rajmahal-backend/internal/assignment"
	"rajmahal-backend/internal/models"
)

func TestResolveStaffFirstMatchWinsOnOverlap(t *testing.T) {
	book := []models.StaffBookEntry{
		{BillbookRange: "301-350", StaffName: "Amit"},
		{BillbookRange: "320-330", StaffName: "Ravi"},
	}

	// 325 falls in both ranges; the earlier entry wins.
	assert.Equal(t, "Amit", assignment.ResolveStaff("325", book))
}

func TestResolveStaffNoMatch(t *testing.T) {
	book := []models.StaffBookEntry{
		{BillbookRange: "301-350", StaffName: "Amit"},
	}

	assert.Equal(t, "", assignment.ResolveStaff("500", book))
}

func TestResolveStaffNonNumericSerial(t *testing.T) {
	book := []models.StaffBookEntry{
		{BillbookRange: "301-350", StaffName: "Amit"},
	}

	assert.Equal(t, "", assignment.ResolveStaff("abc", book))
}

func TestResolveStaffSkipsMalformedRanges(t *testing.T) {
	book := []models.StaffBookEntry{
		{BillbookRange: "oops", StaffName: "Nobody"},
		{BillbookRange: "100-200", StaffName: "Amit"},
	}

	assert.Equal(t, "Amit", assignment.ResolveStaff("150", book))
}

func TestResolveStaffRangeBoundsInclusive(t *testing.T) {
	book := []models.StaffBookEntry{
		{BillbookRange: "301-350", StaffName: "Amit"},
	}

	assert.Equal(t, "Amit", assignment.ResolveStaff("301", book))
	assert.Equal(t, "Amit", assignment.ResolveStaff("350", book))
	assert.Equal(t, "", assignment.ResolveStaff("300", book))
	assert.Equal(t, "", assignment.ResolveStaff("351", book))
}

func TestParseRange(t *testing.T) {
	start, end, ok := assignment.ParseRange("301-350")
	assert.True(t, ok)
	assert.Equal(t, 301, start)
	assert.Equal(t, 350, end)

	_, _, ok = assignment.ParseRange("350-301")
	assert.False(t, ok)

	_, _, ok = assignment.ParseRange("301")
	assert.False(t, ok)

	_, _, ok = assignment.ParseRange("a-b")
	assert.False(t, ok)
}

// Package query filters and sorts order lists for display. All criteria
// are optional and combined with AND; the date window filter and the date
// sort are independent even though the UI drives them from one selector.
package query

import (
	"sort"
	"strings"
	"time"

	"rajmahal-backend/internal/models"
)

// Date windows, matched against an order's delivery date.
const (
	WindowToday     = "today"
	WindowTomorrow  = "tomorrow"
	WindowThisWeek  = "thisweek"
	WindowThisMonth = "thismonth"
)

// Delivery date sort directions.
const (
	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

type Criteria struct {
	// SerialContains is a case-sensitive substring match on sno.
	SerialContains string
	// ProductContains is a case-insensitive substring match on product.
	ProductContains string
	// Status is an exact delivery status match.
	Status string
	// DateWindow keeps only orders whose delivery date falls in the
	// window. Orders with a missing or unparseable delivery date are
	// excluded.
	DateWindow string
	// DateOrder sorts the result by delivery date. The sort is stable:
	// equal dates keep their prior relative order.
	DateOrder string
	// Now anchors the date windows; the zero value means time.Now().
	Now time.Time
}

// FilterOrders applies the criteria to orders and returns a new slice.
// The input is never modified.
func FilterOrders(orders []models.Order, c Criteria) []models.Order {
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if c.SerialContains != "" && !strings.Contains(o.Sno, c.SerialContains) {
			continue
		}
		if c.ProductContains != "" &&
			!strings.Contains(strings.ToLower(o.Product), strings.ToLower(c.ProductContains)) {
			continue
		}
		if c.Status != "" && o.DeliveryStatus != c.Status {
			continue
		}
		if c.DateWindow != "" {
			d, ok := parseDate(o.DeliveryDate)
			if !ok || !inWindow(d, c.DateWindow, now) {
				continue
			}
		}
		out = append(out, o)
	}

	switch c.DateOrder {
	case OrderAscending:
		sortByDeliveryDate(out, false)
	case OrderDescending:
		sortByDeliveryDate(out, true)
	}

	return out
}

func sortByDeliveryDate(orders []models.Order, descending bool) {
	sort.SliceStable(orders, func(i, j int) bool {
		di, oki := parseDate(orders[i].DeliveryDate)
		dj, okj := parseDate(orders[j].DeliveryDate)
		// Unparseable dates sort last regardless of direction.
		if !oki || !okj {
			return oki && !okj
		}
		if descending {
			return di.After(dj)
		}
		return di.Before(dj)
	})
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func inWindow(d time.Time, window string, now time.Time) bool {
	day := truncateToDay(d)
	today := truncateToDay(now)

	switch window {
	case WindowToday:
		return day.Equal(today)
	case WindowTomorrow:
		return day.Equal(today.AddDate(0, 0, 1))
	case WindowThisWeek:
		// Sunday through Saturday of the current week.
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)
		return !day.Before(weekStart) && !day.After(weekEnd)
	case WindowThisMonth:
		return day.Month() == today.Month() && day.Year() == today.Year()
	default:
		return false
	}
}

// truncateToDay normalizes to calendar-day precision in UTC so that dates
// parsed without a zone compare cleanly against the local clock.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

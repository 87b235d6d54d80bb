package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rajmahal_orders_created_total",
		Help: "Orders created, including replacements of an existing serial number.",
	})

	SyncAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rajmahal_sheet_sync_attempts_total",
		Help: "Spreadsheet sync attempts by result.",
	}, []string{"result"})
)

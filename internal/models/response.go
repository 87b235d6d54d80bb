package models

import "time"

type HealthResponse struct {
	Status string `json:"status"`
}

type SyncStatusResponse struct {
	Configured  bool      `json:"configured"`
	LastChecked time.Time `json:"lastChecked"`
}

type SyncResponse struct {
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}
